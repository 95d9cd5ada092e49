package get_me

import (
	"errors"
	"net/http"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/api/middleware"
	"github.com/alexisrr11/turnos-service/internal/service/users"
)

const (
	msgUnauthorized = "требуется токен доступа"
	msgUserNotFound = "пользователь не найден"
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

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByID(r.Context(), identity, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound), errors.Is(err, users.ErrAccessDenied):
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /auth/me - Failed: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
