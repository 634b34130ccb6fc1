//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

// Storage is the service surface the HTTP layer talks to.
type Storage interface {
	CreateOrder(ctx context.Context, externalID, customerEmail string, totalAmountCents int64) (*repository.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*repository.Order, error)
	GetOrderByExternalID(ctx context.Context, externalID string) (*repository.Order, error)
	ChangeOrderStatus(ctx context.Context, id uuid.UUID, target repository.OrderStatus, actor, reason string) (*repository.Order, error)
	GetOrderHistory(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderHistoryEntry, error)
	GetOrderReturns(ctx context.Context, orderID uuid.UUID) ([]*repository.ReturnRequest, error)
	CreateReturn(ctx context.Context, orderID uuid.UUID, reason, actor string) (*repository.ReturnRequest, error)
	GetReturn(ctx context.Context, id uuid.UUID) (*repository.ReturnRequest, error)
	ChangeReturnStatus(ctx context.Context, id uuid.UUID, target repository.ReturnStatus, actor, reason string) (*repository.ReturnRequest, error)
	GetReturnHistory(ctx context.Context, returnID uuid.UUID) ([]*repository.ReturnHistoryEntry, error)
	GetJob(ctx context.Context, id uuid.UUID) (*repository.JobLog, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	server       *http.Server
	AuditManager *AuditManager
	logger       *zap.Logger
}

func New(storage Storage, userRepo UserRepo, auditManager *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		storage:      storage,
		userRepo:     userRepo,
		AuditManager: auditManager,
		logger:       logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/by-external-id/{external_id}", s.handleGetOrderByExternalID).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/status", s.handleChangeOrderStatus).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/history", s.handleOrderHistory).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/returns", s.handleOrderReturns).Methods(http.MethodGet)

	api.HandleFunc("/returns", s.handleCreateReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns/{id}", s.handleGetReturn).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id}/status", s.handleChangeReturnStatus).Methods(http.MethodPost)
	api.HandleFunc("/returns/{id}/history", s.handleReturnHistory).Methods(http.MethodGet)

	api.HandleFunc("/jobs/{id}", s.handleGetJob).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps the domain error taxonomy onto HTTP statuses.
func respondDomainError(w http.ResponseWriter, err error) {
	var invalid *repository.InvalidTransitionError
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.As(err, &invalid):
		respondError(w, http.StatusConflict, invalid.Error())
	case errors.Is(err, repository.ErrConcurrentModification):
		respondError(w, http.StatusConflict, "concurrent modification, retry the operation")
	case errors.Is(err, storage.ErrOrderNotReturnable):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// actor resolves the identity recorded in history rows from basic auth.
func actor(r *http.Request) string {
	if username, _, ok := r.BasicAuth(); ok {
		return username
	}
	return "api"
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
