package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/swipemath/pkg/api/handlers"
	"github.com/cbodonnell/swipemath/pkg/api/middleware"
	authproviders "github.com/cbodonnell/swipemath/pkg/auth/providers"
	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	AuthProvider authproviders.AuthProvider
	Repository   repositories.Repository
	GameConfig   config.GameConfig
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter returns the API routes.
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	authMiddleware := middleware.NewAuthMiddleware(opts.AuthProvider)

	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.HandleFunc("/healthz", handlers.HandleHealth(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/config", handlers.HandleGetConfig(opts.GameConfig)).Methods(http.MethodGet)
	r.HandleFunc("/results", handlers.HandleListResults(opts.Repository)).Methods(http.MethodGet)
	r.Handle("/results/me", authMiddleware(handlers.HandleGetBestResult(opts.Repository))).Methods(http.MethodGet)
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

// Start serves the API until ctx is done.
func (s *APIServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down API server: %v", err)
		}
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("api server error: %v", err)
	}
	return nil
}
