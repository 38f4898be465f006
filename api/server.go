package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cryptomarket/market-api/interfaces"
)

// Version reported by the root endpoint
const Version = "1.0.0"

type Server struct {
	port       string
	marketData interfaces.IMarketDataService
	server     *http.Server
}

func New(port string, marketData interfaces.IMarketDataService) *Server {
	return &Server{
		port:       port,
		marketData: marketData,
	}
}

// Router builds the request router with all API routes registered
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins", s.handleListCoins).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/{coin_id}", s.handleGetCoin).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/categories", s.handleListCategories).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/categories/{category_id}/coins", s.handleCategoryCoins).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler())

	return corsMiddleware(router)
}

// Start runs the HTTP server in the background
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

// corsMiddleware allows any origin, matching the open CORS policy of the API
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
