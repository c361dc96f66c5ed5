// Package server exposes workout reports over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Server serves workout reports computed by the ftracker package.
type Server struct {
	cfg config.Config

	httpServer http.Server
	gin        *gin.Engine
}

// New builds a server with routes registered. Workers below 1 is treated as 1.
func New(cfg config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	s := &Server{
		cfg: cfg,
		gin: gin.New(),
	}

	s.httpServer.Addr = cfg.Address
	s.httpServer.Handler = s.gin
	s.httpServer.ReadHeaderTimeout = 5 * time.Second

	s.gin.RedirectTrailingSlash = false
	s.gin.RedirectFixedPath = false

	s.gin.Use(requestID(), accessLog(), gin.Recovery())

	s.gin.GET("/ping", s.ping)

	api := s.gin.Group("/api")
	api.GET("/kinds", s.listKinds)
	api.POST("/training", s.showTraining)
	api.POST("/trainings", s.showTrainings)

	if cfg.Pprof {
		debug := s.gin.Group("/debug/pprof")
		debug.GET("/", gin.WrapF(pprof.Index))
		debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		debug.GET("/profile", gin.WrapF(pprof.Profile))
		debug.GET("/symbol", gin.WrapF(pprof.Symbol))
		debug.GET("/trace", gin.WrapF(pprof.Trace))
		debug.GET("/:name", func(c *gin.Context) {
			pprof.Handler(c.Param("name")).ServeHTTP(c.Writer, c.Request)
		})
	}

	return s
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Run serves HTTP until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Print("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
