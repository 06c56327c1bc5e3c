package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitacare-service/internal/app/config"
	"vitacare-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	t.Run("generates an identifier when the client sends none", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("honours a client-supplied identifier", func(t *testing.T) {
		var seen string
		var fromClient bool
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "client-supplied-id", seen)
		assert.True(t, fromClient)
	})
}

func TestSessionAuth(t *testing.T) {
	jwtConfig := config.JWT{Secret: "test-secret"}
	middleware := SessionAuth(zap.NewNop(), jwtConfig)

	protected := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := r.Context().Value(constvars.CONTEXT_CALLER_ID_KEY).(string)
		w.Header().Set("X-Caller", callerID)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		protected.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+"not-a-jwt")
		recorder := httptest.NewRecorder()
		protected.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token exposes the caller id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "65f1e1a1b2c3d4e5f6a7b8c9",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte(jwtConfig.Secret))
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+signed)
		recorder := httptest.NewRecorder()
		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "65f1e1a1b2c3d4e5f6a7b8c9", recorder.Header().Get("X-Caller"))
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "65f1e1a1b2c3d4e5f6a7b8c9",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		signed, err := token.SignedString([]byte(jwtConfig.Secret))
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+signed)
		recorder := httptest.NewRecorder()
		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRecovery(t *testing.T) {
	handler := Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "\"success\":false")
}
