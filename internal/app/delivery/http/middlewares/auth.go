package middlewares

import (
	"context"
	"net/http"
	"strings"

	"vitacare-service/internal/app/config"
	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/exceptions"
	"vitacare-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// SessionAuth validates the bearer token and stores the caller's account ID
// in the request context. Downstream handlers trust only the context value,
// never request bodies, for the caller identity.
func SessionAuth(log *zap.Logger, jwtConfig config.JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(constvars.HeaderAuthorization)
			if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
				utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			rawToken := strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix)

			claims := jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtConfig.Secret), nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				utils.BuildErrorResponse(log, w, exceptions.ErrTokenInvalidOrExpired(err))
				return
			}

			ctx := context.WithValue(r.Context(), constvars.CONTEXT_CALLER_ID_KEY, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
