package handler

import (
	"net/http"

	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/wallet"
)

// BalanceResponse represents a wallet balance
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// HandleGetBalance handles wallet balance lookups
// @Summary Get coin balance
// @Description Returns the user's current coin balance
// @Tags wallet
// @Produce json
// @Param discord_id query string true "Discord account ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse "Missing discord_id"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /wallet/balance [get]
func HandleGetBalance(walletSvc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		balance, err := walletSvc.GetBalance(r.Context(), discordID)
		if err != nil {
			log.Error(ErrMsgGetBalanceFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}
