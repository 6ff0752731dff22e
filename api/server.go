// Package api exposes the core to a presentation layer over HTTP. All
// input validation lives here; the core never sees a malformed request.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"powsim/api/handlers"
	"powsim/node"
)

// Server wraps the gin engine and its routes.
type Server struct {
	engine *gin.Engine
	addr   string
}

// NewServer builds the router for one application context.
func NewServer(app *node.App, addr string) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(Recovery())
	engine.Use(Logger())
	engine.Use(CORS())

	h := handlers.New(app)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/mine", h.MineBlock)
		v1.GET("/chain", h.GetChain)
		v1.GET("/chain/validate", h.ValidateChain)
		v1.POST("/network/sync", h.SyncNetwork)
		v1.GET("/network/nodes", h.GetNodes)
	}

	return &Server{engine: engine, addr: addr}
}

// shutdownTimeout bounds how long in-flight requests may linger once
// shutdown begins.
const shutdownTimeout = 30 * time.Second

// Start serves HTTP requests until the listener fails or ctx is
// canceled. Cancellation drains in-flight requests through a graceful
// shutdown before returning.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", s.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
