package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/viant/mcp-protocol/schema"
	mcpsrv "github.com/viant/mcp/server"

	pmcp "github.com/viant/policybin/mcp"
	"github.com/viant/policybin/service"
	"github.com/viant/policybin/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr, mcpAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and, when configured, the MCP tools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.config.HTTP.Addr = addr
			}
			if mcpAddr != "" {
				a.config.MCPServer.Addr = mcpAddr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default from config or :3000)")
	cmd.Flags().StringVar(&mcpAddr, "mcp-addr", "", "MCP listen address (disabled when empty)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	components, err := service.New(a.config, a.logger)
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)
	server := web.NewServer(components.Service,
		web.WithCredentials(web.Credentials{
			Username: a.config.Auth.Username,
			Password: a.config.Auth.Password,
			Realm:    a.config.Auth.Realm,
		}),
		web.WithStaticDir(a.config.HTTP.StaticDir),
		web.WithLogger(a.logger),
	)
	if !a.config.Auth.Enabled() {
		a.logger.Warn("auth_disabled", "reason", "username or password not configured")
	}

	servers := []*http.Server{newHTTPServer(a.config.HTTP.Addr, server.Handler())}
	if addr := a.config.MCPAddr(); addr != "" {
		mcpServer, err := mcpsrv.New(
			mcpsrv.WithImplementation(schema.Implementation{Name: "policybin-mcp", Version: "0.1.0"}),
			mcpsrv.WithNewHandler(pmcp.NewHandler(components.Service, a.logger)),
			mcpsrv.WithEndpointAddress(addr),
			mcpsrv.WithRootRedirect(true),
			mcpsrv.WithStreamableURI("/mcp"),
		)
		if err != nil {
			return err
		}
		mcpServer.UseStreamableHTTP(true)
		httpServer := mcpServer.HTTP(ctx, addr)
		applyTimeouts(httpServer)
		servers = append(servers, httpServer)
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		a.logger.Info("server_listening", "addr", srv.Addr)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown_signal_received")
	case serveErr = <-errCh:
		a.logger.Error("server_failed", "error", serveErr.Error())
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	for _, srv := range servers {
		if err := srv.Shutdown(ctxShutdown); err != nil {
			a.logger.Error("server_shutdown_failed", "addr", srv.Addr, "error", err.Error())
		}
	}
	a.logger.Info("server_stopped")
	return serveErr
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{Addr: addr, Handler: handler}
	applyTimeouts(srv)
	return srv
}

func applyTimeouts(srv *http.Server) {
	srv.ReadHeaderTimeout = 10 * time.Second
	srv.ReadTimeout = 60 * time.Second
	srv.WriteTimeout = 120 * time.Second
	srv.IdleTimeout = 120 * time.Second
}
