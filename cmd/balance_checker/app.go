package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/app/provider"
	"starknet_balance_checker/internal/app/service"
	"starknet_balance_checker/internal/infrastructure/configloader"
	clientprovider "starknet_balance_checker/internal/infrastructure/network/client"
	networkdefinition "starknet_balance_checker/internal/infrastructure/network/definition"
	"starknet_balance_checker/internal/pkg/logger"
	"starknet_balance_checker/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// application holds the wired dependencies shared by every command.
type application struct {
	cfg      *configloader.Config
	log      port.Logger
	client   *clientprovider.StarknetClient
	balances *service.BalanceServiceImpl
}

func bootstrap(ctx context.Context, configPath string) (*application, error) {
	cfg, err := configloader.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger := logger.NewSlogAdapter()
	logger.Info("Configuration loaded", "path", configPath, "network", cfg.Network.Name)

	metrics.MustRegisterMetrics()

	netDef, err := networkdefinition.NewNetworkDefinitionProvider(appLogger).Resolve(cfg.Network.Name, cfg.Network.RPCURL)
	if err != nil {
		return nil, err
	}

	client, err := clientprovider.NewStarknetClient(ctx, netDef, clientprovider.Options{
		RateLimit:  cfg.RpcClient.RateLimit,
		BurstLimit: cfg.RpcClient.BurstLimit,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Starknet client initialized", "chain_id", netDef.ChainID, "rpc", netDef.RPCURL)

	balances := service.NewBalanceService(client, provider.NewTokenProvider(), appLogger, cfg.Performance.MaxConcurrentRequests)

	return &application{cfg: cfg, log: appLogger, client: client, balances: balances}, nil
}

func (a *application) close() {
	a.client.Close()
}

// startMetricsServer exposes /metrics on addr. An empty addr disables it.
func startMetricsServer(addr string, log port.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

	go func() {
		log.Info("Metrics listener starting", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics listener failed", "error", err)
		}
	}()
	return srv
}

func shutdown(srv *http.Server, log port.Logger) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", "address", srv.Addr, "error", err)
	}
}
