package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/authtoken"
)

const (
	msgMissingToken = "требуется токен доступа"
	msgInvalidToken = "невалидный или просроченный токен"
)

type identityContextKey struct{}

// TokenVerifier интерфейс проверки токенов доступа
type TokenVerifier interface {
	Verify(tokenString string) (*authtoken.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладёт Identity запроса в контекст
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("auth: token rejected: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			identity := domain.Identity{
				UserID:     claims.UserID,
				BusinessID: claims.BusinessID,
				Role:       domain.Role(claims.Role),
			}
			if !domain.ValidRole(identity.Role) {
				logger.Warn("auth: token with unknown role %q rejected", claims.Role)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext извлекает Identity запроса, положенную Auth middleware
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(domain.Identity)
	return identity, ok
}
