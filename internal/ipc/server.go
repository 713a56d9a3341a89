package ipc

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Server wraps an HTTP server with questionnaire-specific routing.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server that binds to the given address.
func NewServer(h *Handler, log *zap.Logger, listenAddr, corsOrigin string) *Server {
	mux := http.NewServeMux()

	// Health endpoint.
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Catalog endpoint.
	mux.HandleFunc("GET /api/v1/questions", h.ListQuestions)

	// Core endpoints. Both are stateless: the full answer set travels in the
	// request body.
	mux.HandleFunc("POST /api/v1/recommend", h.Recommend)
	mux.HandleFunc("POST /api/v1/compile", h.Compile)

	var handler http.Handler = mux
	handler = loggingMiddleware(log, handler)
	handler = requestIDMiddleware(handler)
	handler = corsMiddleware(corsOrigin, handler)

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: handler,
	}

	return &Server{
		httpServer: srv,
	}
}

// Start begins listening for HTTP connections. Blocks until the server stops.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
