package api

import "net/http"

// handleRoot describes the API to a caller hitting the root path
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, RootResponse{
		Message:       "Welcome to Cryptocurrency Market API",
		Version:       Version,
		Documentation: "/api/v1/docs",
	})
}

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, HealthResponse{Status: "healthy"})
}
