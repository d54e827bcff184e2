package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a live session and stores it on
// the request context. A valid JWT whose session is gone (logout, expiry)
// is rejected the same way as a bad token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil || session.ExpiresAt.Before(time.Now()) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}
		if !session.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
