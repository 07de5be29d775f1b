package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wolfyek/client-gallery/internal/config"
	"github.com/wolfyek/client-gallery/internal/utils"
)

type contextKey string

// AdminUserKey holds the authenticated admin username in the request context.
const AdminUserKey contextKey = "adminUser"

// SessionCookieName is the admin session cookie gating /admin routes.
const SessionCookieName = "admin_session"

var jwtSecret = config.Envs.JWTSecret

// AdminAuth rejects requests without a valid admin session cookie.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		username, ok := claims["username"].(string)
		if !ok || username == "" {
			utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), AdminUserKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminUser returns the authenticated admin username, or "admin" when
// the request did not pass through AdminAuth (log fallback only).
func AdminUser(ctx context.Context) string {
	if username, ok := ctx.Value(AdminUserKey).(string); ok && username != "" {
		return username
	}
	return "admin"
}
