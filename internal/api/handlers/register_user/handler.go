package register_user

import (
	"errors"
	"net/http"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/service/users"
	"github.com/alexisrr11/turnos-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "пользователь с таким email уже существует"
	msgBusinessNotFound   = "бизнес не найден"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, users.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("POST /auth/register - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d, business_id=%d",
		result.User.ID, result.User.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
