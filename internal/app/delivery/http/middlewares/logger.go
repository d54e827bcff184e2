package middlewares

import (
	"net/http"
	"time"

	"nutricare-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogger emits one structured line per request once it finishes.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: constvars.StatusOK}

		next.ServeHTTP(recorder, r)

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Info("request finished",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, recorder.statusCode),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
	})
}
