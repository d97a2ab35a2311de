package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"kiro/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

type HTTPServer struct {
	server   *http.Server
	listener net.Listener
	logger   logger.Logger
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewHTTPServer wires the HTTP server into the fx lifecycle. The listener
// is bound inside OnStart so a bind failure (port taken, permission denied)
// aborts application startup and the process exits non-zero. OnStop drains
// in-flight requests within ShutdownTimeout before closing the listener.
func NewHTTPServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	config ServerConfig,
	log logger.Logger,
) *HTTPServer {
	srv := &http.Server{
		Addr:        net.JoinHostPort(config.Host, config.Port),
		Handler:     router,
		ReadTimeout: config.ReadTimeout,
	}

	httpServer := &HTTPServer{
		server: srv,
		logger: log.With(logger.String("component", "http_server")),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("bind %s: %w", srv.Addr, err)
			}
			httpServer.listener = ln

			httpServer.logger.Info("starting HTTP server",
				logger.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					httpServer.logger.Fatal("HTTP server failed", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			httpServer.logger.Info("shutting down HTTP server")

			drainCtx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
			defer cancel()

			return srv.Shutdown(drainCtx)
		},
	})

	return httpServer
}

func (s *HTTPServer) GetServer() *http.Server {
	return s.server
}

// Addr reports the bound listener address. Only valid after OnStart; it is
// how tests discover the port when configured with port 0.
func (s *HTTPServer) Addr() string {
	if s.listener == nil {
		return s.server.Addr
	}
	return s.listener.Addr().String()
}
