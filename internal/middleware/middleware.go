package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"collegeblog/internal/apperror"
	"collegeblog/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the last middleware in the list runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

// RequestID assigns a request id (reusing an incoming X-Request-ID) and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(RequestIDHeader, chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	}))
}

type peerAddrKey struct{}

// RealIP sets RemoteAddr from the forwarding headers. The connection's own
// address stays available through PeerAddr.
func RealIP(next http.Handler) http.Handler {
	realIP := chimw.RealIP(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(peerAddrKey{}).(string); !ok {
			r = r.WithContext(context.WithValue(r.Context(), peerAddrKey{}, r.RemoteAddr))
		}
		realIP.ServeHTTP(w, r)
	})
}

// PeerAddr returns the address of the connected peer, ignoring forwarding headers.
func PeerAddr(r *http.Request) string {
	if addr, ok := r.Context().Value(peerAddrKey{}).(string); ok {
		return addr
	}
	return r.RemoteAddr
}

// LoggingMiddleware logs one line per request with status, size and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []any{
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"remote", r.RemoteAddr,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		}
		if status >= http.StatusInternalServerError {
			logger.Log.Errorw("request", fields...)
			return
		}
		logger.Log.Infow("request", fields...)
	})
}

// Recoverer turns a handler panic into a JSON 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.Log.Errorw("panic recovered",
				"request_id", chimw.GetReqID(r.Context()),
				"panic", rvr,
			)

			appErr := apperror.NewInternal("Internal server error", nil)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(appErr.StatusCode())
			_ = json.NewEncoder(w).Encode(appErr.ToResponse())
		}()

		next.ServeHTTP(w, r)
	})
}

// Timeout cancels the request context after d.
func Timeout(d time.Duration) Middleware {
	return chimw.Timeout(d)
}

func CORSMiddleware(allowedOrigins []string) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
