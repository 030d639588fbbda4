package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhuoyaazh/my-pixel-world/internal/apperror"
)

const bearerPrefix = "Bearer "

func (that *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		that.logger.Info("request served",
			"requestID", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(started),
		)
	})
}

// requireSessionToken - the bearer token must be signed for the session in the path.
func (that *Server) requireSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			that.writeError(w, fmt.Errorf("%w: missing bearer token", apperror.ErrInvalidToken))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if err := that.tokens.VerifyToken(token, chi.URLParam(r, "id")); err != nil {
			that.writeError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
