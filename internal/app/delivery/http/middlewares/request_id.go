package middlewares

import (
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/utils"
	"context"
	"net/http"
)

// RequestID takes the client-provided X-Request-ID when present, otherwise
// mints one, and echoes it back on the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientProvided := requestID != ""
		if !isClientProvided {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientProvided)

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
