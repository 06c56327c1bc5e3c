package middlewares

import (
	"net/http"

	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/exceptions"
	"vitacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Recovery converts panics into a clean 500 response instead of tearing down
// the connection.
func Recovery(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
					log.Error("panic recovered",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingEndpointKey, r.URL.Path),
						zap.Any("panic", recovered),
					)
					utils.BuildErrorResponse(log, w, exceptions.ErrServerProcess(nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
