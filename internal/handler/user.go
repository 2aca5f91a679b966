package handler

import (
	"net/http"

	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/user"
)

// RegisterUserRequest represents the request to register a user
type RegisterUserRequest struct {
	DiscordID string `json:"discord_id" validate:"required,max=64"`
	Username  string `json:"username" validate:"required,max=100"`
}

// HandleRegisterUser handles user registration
// @Summary Register a user
// @Description Creates the user if missing and grants the starting balance; refreshes the username otherwise
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Registration request"
// @Success 200 {object} DataResponse "Registered user"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user/register [post]
func HandleRegisterUser(userSvc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		registered, err := userSvc.Register(r.Context(), req.DiscordID, req.Username)
		if err != nil {
			log.Error(ErrMsgRegisterUserFailed, "error", err, "username", req.Username)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("User registered", "user_id", registered.ID, "username", registered.Username)
		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgUserRegisteredSuccess,
			Data:    registered,
		})
	}
}
