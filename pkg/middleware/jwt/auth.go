package jwt

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"league/internal/models"
	"league/pkg/lib/jwt"
	resp "league/pkg/lib/response"
)

type ctxKey int

const (
	claimsKey ctxKey = iota
	userIDKey
)

var ErrNoClaims = errors.New("no auth claims in request context")

// NewUserAuth пропускает запрос только с валидным Bearer токеном и кладет claims в контекст.
func NewUserAuth(log *slog.Logger, tokens *jwt.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("op", "middlewareAuth"))
		log.Info("auth middleware enabled")

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, userID, ok := authenticate(w, r, log, tokens)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims, userID)))
		})
	}
}

// NewAdminAuth дополнительно требует роль admin.
func NewAdminAuth(log *slog.Logger, tokens *jwt.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("op", "middlewareAdminAuth"))
		log.Info("admin auth middleware enabled")

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, userID, ok := authenticate(w, r, log, tokens)
			if !ok {
				return
			}

			if models.Role(claims.Role) != models.RoleAdmin {
				log.Info("user is not admin", slog.Uint64("userID", uint64(userID)))
				resp.SendError(w, r, http.StatusForbidden, "access forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims, userID)))
		})
	}
}

func authenticate(w http.ResponseWriter, r *http.Request, log *slog.Logger, tokens *jwt.Manager) (*jwt.CustomClaims, uint, bool) {
	tokenStr, err := jwt.ExtractJWTFromHeader(r)
	if err != nil {
		handleAuthError(w, r, log, err)
		return nil, 0, false
	}

	claims, err := tokens.ValidateJWT(tokenStr)
	if err != nil {
		handleAuthError(w, r, log, err)
		return nil, 0, false
	}

	userID, err := claims.UserID()
	if err != nil {
		handleAuthError(w, r, log, err)
		return nil, 0, false
	}
	return claims, userID, true
}

func withClaims(ctx context.Context, claims *jwt.CustomClaims, userID uint) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return context.WithValue(ctx, userIDKey, userID)
}

// ClaimsFromContext возвращает claims, положенные middleware.
func ClaimsFromContext(ctx context.Context) (*jwt.CustomClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.CustomClaims)
	return claims, ok
}

func UserIDFromContext(ctx context.Context) (uint, error) {
	userID, ok := ctx.Value(userIDKey).(uint)
	if !ok {
		return 0, ErrNoClaims
	}
	return userID, nil
}

func handleAuthError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.Warn("auth error", slog.String("error", err.Error()))
	if errors.Is(err, jwt.ErrExpiredToken) {
		resp.SendError(w, r, http.StatusUnauthorized, err.Error())
		return
	}
	if errors.Is(err, jwt.ErrNoAccessToken) {
		resp.SendError(w, r, http.StatusUnauthorized, "missing bearer token")
		return
	}
	resp.SendError(w, r, http.StatusUnauthorized, "invalid token")
}
