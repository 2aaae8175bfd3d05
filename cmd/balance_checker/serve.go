package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"starknet_balance_checker/internal/infrastructure/mcpserver"
	"starknet_balance_checker/internal/infrastructure/restapi"
	"starknet_balance_checker/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
)

func runServe(ctx context.Context, configPath string) error {
	app, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer app.close()

	metricsSrv := startMetricsServer(app.cfg.Metrics.Address, app.log)
	defer shutdown(metricsSrv, app.log)

	s := mcpserver.NewBalanceServer(app.cfg.Server.Name, app.cfg.Server.Version, app.balances, app.log)
	logger.Info("MCP balance server running on stdio", "name", app.cfg.Server.Name)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("MCP server stopped", "error", err)
		return err
	}
	return nil
}

func runHTTP(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer app.close()

	gin.SetMode(gin.ReleaseMode)
	router := restapi.SetupRouter(restapi.NewBalanceHandler(app.balances, app.log), app.log, restapi.RouterOptions{
		SwaggerEnabled: app.cfg.HTTP.SwaggerEnabled,
		SwaggerFile:    app.cfg.HTTP.SwaggerFile,
	})
	if app.cfg.HTTP.SwaggerEnabled {
		logger.Info("Swagger UI enabled", "path", "/swagger/index.html")
	}

	srv := newHTTPServer(app.cfg.HTTP.Port, router)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server failed", "error", err)
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server")
		shutdown(srv, app.log)
	}
	logger.Info("HTTP server stopped")
	return nil
}

func newHTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
