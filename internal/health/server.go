package health

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCounter reports the number of live card sessions
type SessionCounter interface {
	ActiveCount() int
}

// ReadyFunc reports whether the Discord gateway is connected
type ReadyFunc func() bool

// Status is the body of GET /healthz
type Status struct {
	Status         string `json:"status"`
	Gateway        bool   `json:"gateway"`
	ActiveSessions int    `json:"active_sessions"`
	Uptime         string `json:"uptime"`
}

// Server exposes liveness for container orchestration
type Server struct {
	srv      *http.Server
	sessions SessionCounter
	ready    ReadyFunc
	started  time.Time
}

// NewServer creates a health server listening on addr
func NewServer(addr string, sessions SessionCounter, ready ReadyFunc) *Server {
	s := &Server{
		sessions: sessions,
		ready:    ready,
		started:  time.Now(),
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router returns the gin engine serving the health routes
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	status := Status{
		Status:  "ok",
		Gateway: true,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	}
	if s.sessions != nil {
		status.ActiveSessions = s.sessions.ActiveCount()
	}
	if s.ready != nil {
		status.Gateway = s.ready()
	}

	code := http.StatusOK
	if !status.Gateway {
		status.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// Start serves in the background until Shutdown
func (s *Server) Start() {
	go func() {
		log.Printf("[Health] Listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Health] Server stopped: %v", err)
		}
	}()
}

// Shutdown stops the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
