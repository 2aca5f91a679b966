package handler

import (
	"net/http"

	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/venture"
)

// VentureRequest is the common request body for venture operations
type VentureRequest struct {
	DiscordID string `json:"discord_id" validate:"required,max=64"`
	Type      string `json:"type" validate:"required,venturekey,max=64"`
}

// MaintainRequest adds the optional point amount to spend on upkeep
type MaintainRequest struct {
	DiscordID string  `json:"discord_id" validate:"required,max=64"`
	Type      string  `json:"type" validate:"required,venturekey,max=64"`
	Points    float64 `json:"points" validate:"gte=0,max=100"`
}

// VentureHandler handles venture-related HTTP requests
type VentureHandler struct {
	ventureSvc venture.Service
}

// NewVentureHandler creates a new venture handler
func NewVentureHandler(ventureSvc venture.Service) *VentureHandler {
	return &VentureHandler{ventureSvc: ventureSvc}
}

// Catalog handles the catalog endpoint
// @Summary List purchasable ventures
// @Description Returns every venture type with its cost, yield, and risk profile
// @Tags venture
// @Produce json
// @Success 200 {object} DataResponse "Catalog entries"
// @Router /venture/catalog [get]
func (h *VentureHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.ventureSvc.Catalog(r.Context())})
}

// Portfolio handles the portfolio endpoint
// @Summary List owned ventures
// @Description Returns the user's ventures with their current state and catalog data
// @Tags venture
// @Produce json
// @Param discord_id query string true "Discord account ID"
// @Success 200 {object} DataResponse "Portfolio entries"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /venture/portfolio [get]
func (h *VentureHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	discordID, ok := GetQueryParam(r, w, "discord_id")
	if !ok {
		return
	}

	entries, err := h.ventureSvc.Portfolio(r.Context(), discordID)
	if err != nil {
		log.Error(ErrMsgGetPortfolioFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// Buy handles the purchase endpoint
// @Summary Buy a venture
// @Description Debits the venture's cost and creates it at full maintenance
// @Tags venture
// @Accept json
// @Produce json
// @Param request body VentureRequest true "Purchase request"
// @Success 200 {object} DataResponse "Created venture"
// @Failure 400 {object} ErrorResponse "Unknown type or not enough coins"
// @Failure 409 {object} ErrorResponse "Already owned"
// @Router /venture/buy [post]
func (h *VentureHandler) Buy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req VentureRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy venture"); err != nil {
		return
	}

	created, err := h.ventureSvc.Purchase(r.Context(), req.DiscordID, req.Type)
	if err != nil {
		log.Error("Buy venture failed", "error", err, "type", req.Type)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Venture purchased", "type", req.Type)
	respondJSON(w, http.StatusOK, DataResponse{Data: created})
}

// Collect handles the collect endpoint
// @Summary Collect accrued yield
// @Description Pays out the venture's accumulated coins, once per cooldown window
// @Tags venture
// @Accept json
// @Produce json
// @Param request body VentureRequest true "Collect request"
// @Success 200 {object} DataResponse "Collect result"
// @Failure 409 {object} ErrorResponse "Unresolved incident"
// @Failure 429 {object} ErrorResponse "On cooldown"
// @Router /venture/collect [post]
func (h *VentureHandler) Collect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req VentureRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect"); err != nil {
		return
	}

	result, err := h.ventureSvc.Collect(r.Context(), req.DiscordID, req.Type)
	if err != nil {
		log.Error("Collect failed", "error", err, "type", req.Type)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Yield collected", "type", req.Type, "payout", result.Payout)
	respondJSON(w, http.StatusOK, DataResponse{Data: result})
}

// Maintain handles the maintain endpoint
// @Summary Spend coins on upkeep
// @Description Restores maintenance points at a flat per-point rate
// @Tags venture
// @Accept json
// @Produce json
// @Param request body MaintainRequest true "Maintain request"
// @Success 200 {object} DataResponse "Updated venture"
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 409 {object} ErrorResponse "Unresolved incident"
// @Router /venture/maintain [post]
func (h *VentureHandler) Maintain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req MaintainRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Maintain"); err != nil {
		return
	}

	updated, err := h.ventureSvc.Maintain(r.Context(), req.DiscordID, req.Type, req.Points)
	if err != nil {
		log.Error("Maintain failed", "error", err, "type", req.Type)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: updated})
}

// Repair handles the repair endpoint
// @Summary Repair an incident
// @Description Resolves the active incident for a quarter of the purchase cost
// @Tags venture
// @Accept json
// @Produce json
// @Param request body VentureRequest true "Repair request"
// @Success 200 {object} DataResponse "Updated venture"
// @Failure 400 {object} ErrorResponse "Nothing to repair or not enough coins"
// @Router /venture/repair [post]
func (h *VentureHandler) Repair(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req VentureRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Repair"); err != nil {
		return
	}

	updated, err := h.ventureSvc.Repair(r.Context(), req.DiscordID, req.Type)
	if err != nil {
		log.Error("Repair failed", "error", err, "type", req.Type)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Venture repaired", "type", req.Type)
	respondJSON(w, http.StatusOK, DataResponse{Data: updated})
}

// Sell handles the sell endpoint
// @Summary Sell a venture
// @Description Deletes the venture and refunds half its purchase cost
// @Tags venture
// @Accept json
// @Produce json
// @Param request body VentureRequest true "Sell request"
// @Success 200 {object} DataResponse "Sale result"
// @Failure 404 {object} ErrorResponse "Not owned"
// @Router /venture/sell [post]
func (h *VentureHandler) Sell(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req VentureRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell venture"); err != nil {
		return
	}

	result, err := h.ventureSvc.Sell(r.Context(), req.DiscordID, req.Type)
	if err != nil {
		log.Error("Sell venture failed", "error", err, "type", req.Type)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Venture sold", "type", req.Type, "refund", result.Refund)
	respondJSON(w, http.StatusOK, DataResponse{Data: result})
}
