/*
server.go - HTTP router and middleware configuration

Routes:
  GET  /healthz                 liveness
  GET  /api/calpers/formulas    CalPERS formula catalogue
  POST /api/fers                FERS annuity
  POST /api/calpers             CalPERS pension
  POST /api/fire/barista        Barista FIRE
  POST /api/fire/fat            Fat FIRE
  POST /api/sweep               one-parameter sensitivity sweep

The server holds no state between requests: every call recalculates from
the request body alone.
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/calpers/formulas", h.ListCalPERSFormulas)
		r.Post("/calpers", h.CalculateCalPERS)
		r.Post("/fers", h.CalculateFERS)

		r.Route("/fire", func(r chi.Router) {
			r.Post("/barista", h.CalculateBaristaFIRE)
			r.Post("/fat", h.CalculateFatFIRE)
		})

		r.Post("/sweep", h.Sweep)
	})

	return r
}

// requestLogger logs one line per request with zap fields.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
