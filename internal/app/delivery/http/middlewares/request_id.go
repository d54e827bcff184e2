package middlewares

import (
	"context"
	"net/http"

	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/utils"
)

// RequestID honors a client-supplied X-Request-ID and generates one when it
// is absent, echoing it back on the response either way.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := requestID != ""
		if !isClientRequestID {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
