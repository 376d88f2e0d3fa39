package middleware

import (
	"context"
	"net/http"
	"strings"

	"careerhub/internal/common"
	"careerhub/internal/domain/user"
	"careerhub/internal/http/response"
	"careerhub/internal/security"
)

type contextKey string

const ContextActorKey contextKey = "actor"

type AuthMiddleware struct {
	jwt *security.JWTProvider
}

func NewAuthMiddleware(jwt *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		email := strings.ToLower(strings.TrimSpace(claims.Email))
		if email == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "token carries no subject", nil))
			return
		}
		actor := user.Actor{Email: email, Role: user.ParseRole(claims.Role)}
		ctx := context.WithValue(r.Context(), ContextActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}

func ActorFromContext(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(ContextActorKey).(user.Actor)
	return actor, ok
}
