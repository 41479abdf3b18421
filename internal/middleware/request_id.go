package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"gomarketplace/internal/contextutil"
)

const RequestIDHeader = "X-Request-ID"

// RequestID берет идентификатор запроса из заголовка или генерирует новый,
// кладет его в контекст и возвращает клиенту
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := contextutil.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
