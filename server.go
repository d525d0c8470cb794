package reviewcash

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(host, port string, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:           host + ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	log.Infof("Starting HTTP server on port %s", port)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Server is shutting down gracefully...")
	return s.httpServer.Shutdown(ctx)
}
