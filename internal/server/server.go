package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/log"
)

// Server wraps the Handler with an http.Server for lifecycle management.
type Server struct {
	handler  *Handler
	server   *http.Server
	listener net.Listener
	port     int // actual port after binding, useful with ":0"
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// Addr is the address to listen on, e.g. "127.0.0.1:5000".
	Addr string
	// Handler serves the routes (required).
	Handler *Handler
	// Tracer creates the per-request server spans. Nil disables them.
	Tracer trace.Tracer
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
}

// NewServer binds the listener. With port 0 the OS picks a free port; use
// Port() to read it.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Handler == nil {
		return nil, errors.New("server: handler is required")
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 30 * time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 60 * time.Second
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}
	port := 0
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}

	return &Server{
		handler:  cfg.Handler,
		port:     port,
		listener: listener,
		server: &http.Server{
			Handler:           Chain(cfg.Handler.Routes(), cfg.Tracer),
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      writeTimeout,
		},
	}, nil
}

// Start serves until the server is stopped. A graceful stop returns nil.
func (s *Server) Start() error {
	log.Info(log.CatHTTP, "Starting web server", "addr", s.listener.Addr().String(), "port", s.port)
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	log.Info(log.CatHTTP, "Stopping web server")
	return s.server.Shutdown(ctx)
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// OpenFunc opens a fresh store for the docs database.
type OpenFunc func() (docs.Store, error)

// Follow reloads the handler every time changes fires, until ctx is done or
// changes is closed. The previous store is closed after the swap when it
// implements io.Closer. Failed reloads keep the current state.
func (h *Handler) Follow(ctx context.Context, changes <-chan struct{}, open OpenFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			store, err := open()
			if err != nil {
				log.ErrorErr(log.CatWatcher, "Reopening docs database failed", err)
				continue
			}
			old := h.Store()
			if err := h.Reload(ctx, store); err != nil {
				log.ErrorErr(log.CatWatcher, "Reloading vocabulary failed", err)
				closeStore(store)
				continue
			}
			closeStore(old)
			log.Info(log.CatWatcher, "Docs database reloaded")
		}
	}
}

func closeStore(s docs.Store) {
	if c, ok := s.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.ErrorErr(log.CatWatcher, "Closing docs database failed", err)
		}
	}
}
