// Package server wires the HTTP surface: routing, shared middleware and
// the operational endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fnb-ordering/internal/auth"
	"fnb-ordering/internal/database"
	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/metrics"
	"fnb-ordering/internal/services/catalog"
	"fnb-ordering/internal/services/delivery"
	"fnb-ordering/internal/services/order"
	"fnb-ordering/internal/services/payment"
	"fnb-ordering/internal/services/review"
	"fnb-ordering/internal/services/user"
)

// Handlers groups the per-domain HTTP handlers the router mounts.
type Handlers struct {
	Catalog  *catalog.Handler
	Order    *order.Handler
	Delivery *delivery.Handler
	Review   *review.Handler
	Payment  *payment.Handler
	User     *user.Handler
}

// Server is the HTTP front of the ordering back-office.
type Server struct {
	httpServer *http.Server
	db         *database.DB
	logger     *logger.Logger
}

// New builds the router and the underlying http.Server.
func New(port int, db *database.DB, tokens *auth.Manager, h Handlers, log *logger.Logger) *Server {
	s := &Server{
		db:     db,
		logger: log,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(s.withLogging)

	r.Route("/api", func(r chi.Router) {
		r.Get("/fnb", h.Catalog.ListItems)
		r.Post("/fnb", h.Catalog.CreateItem)
		r.Get("/menu", h.Catalog.ListMenus)
		r.Post("/menu", h.Catalog.CreateMenu)
		r.Put("/menu/{id}", h.Catalog.UpdateMenu)
		r.Delete("/menu/{id}", h.Catalog.DeleteMenu)

		r.Post("/orders", h.Order.Create)
		r.With(tokens.Middleware).Get("/orders", h.Order.List)

		r.Get("/delivery", h.Delivery.List)
		r.Put("/delivery/{order_id}", h.Delivery.UpdateStatus)

		r.Post("/reviews", h.Review.Create)
		r.Get("/reviews/{order_id}", h.Review.GetByOrder)

		r.Post("/payments", h.Payment.Create)
		r.Get("/payments/{order_id}", h.Payment.GetByOrder)

		r.Post("/auth/register", h.User.Register)
		r.Post("/auth/login", h.User.Login)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/metrics", metrics.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Start begins serving. Blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), "", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		httputil.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"reason": "database unreachable",
		})
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
