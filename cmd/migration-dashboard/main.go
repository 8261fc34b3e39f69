// Package main runs the L2 migration dashboard backend.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/metrics"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/evm"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/service/dashboard"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if err := config.validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ethClient, err := evm.Dial(ctx, config.RPCURL, config.RPCTimeout)
	if err != nil {
		logger.Fatal("Invalid rpc url", zap.Error(err))
	}
	defer ethClient.Close()
	heightSource := evm.NewHeightSource(evm.NewRPCClient(ethClient, metrics.NewRPCClient(model.Celo)))
	logChainID(ctx, heightSource, logger)

	backend, closeBackend, err := newStoreBackend(ctx, logger)
	if err != nil {
		logger.Fatal("Build realtime store client", zap.Error(err))
	}
	defer closeBackend()
	storeClient := store.NewObservedClient(backend, metrics.NewStoreClient(config.StoreBackend))

	components, err := newComponents(heightSource, storeClient, logger)
	if err != nil {
		logger.Fatal("Build dashboard components", zap.Error(err))
	}

	hub := transport.NewStatusHub(config.StreamRate, metrics.NewStatusStream(), logger)
	healthServer := health.NewServer()
	board, err := dashboard.NewDashboard(dashboard.Config{
		TargetBlock:         config.TargetBlock,
		AverageBlockSeconds: config.AverageBlockSeconds,
		CelebrationDuration: config.CelebrationDuration,
	}, components, metrics.NewDashboard(), logger, hub, transport.NewHealthReporter(healthServer))
	if err != nil {
		logger.Fatal("Build dashboard", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()
	hub.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
		hub.Close()
	}()

	boardDone := make(chan struct{})
	go func() {
		defer close(boardDone)
		if err := board.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Dashboard stopped", zap.Error(err))
			stop()
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
		stop()
	}
	<-boardDone
}

func logChainID(ctx context.Context, source *evm.HeightSource, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, config.RPCTimeout)
	defer cancel()
	id, err := source.ChainID(ctx)
	if err != nil {
		logger.Warn("Chain id unavailable", zap.Error(err))
		return
	}
	logger.Info("Connected to chain", zap.String("chain_id", id), zap.String("rpc", config.RPCURL))
}

func newStoreBackend(ctx context.Context, logger *zap.Logger) (store.Client, func(), error) {
	switch config.StoreBackend {
	case backendRedis:
		client, err := store.NewRedisClient(ctx, store.RedisConfig{
			Addr:        config.RedisAddr,
			Password:    config.RedisPassword,
			DB:          config.RedisDB,
			KeyPrefix:   config.RedisKeyPrefix,
			DialTimeout: config.RPCTimeout,
			RetryDelay:  config.StoreRetryDelay,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logger.Error("Failed to close redis client", zap.Error(err))
			}
		}, nil
	default:
		client, err := store.NewFirebaseClient(store.FirebaseConfig{
			DatabaseURL: config.FirebaseURL,
			AuthToken:   config.FirebaseToken,
			RetryDelay:  config.StoreRetryDelay,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}

func newComponents(source dashboard.HeightSource, client dashboard.StoreClient, logger *zap.Logger) (dashboard.Components, error) {
	poller, err := dashboard.NewHeightPoller(source, config.TargetBlock, config.PollInterval, config.RPCTimeout,
		metrics.NewHeightPoller(model.Celo), logger)
	if err != nil {
		return dashboard.Components{}, err
	}
	progress, err := dashboard.NewStageFeed(client, dashboard.StageFeedConfig{
		Name:            "progress",
		StagesPath:      config.ProgressPath,
		LivePath:        config.ProgressLivePath,
		FallbackTimeout: config.FallbackTimeout,
	}, metrics.NewStageFeed("progress"), logger)
	if err != nil {
		return dashboard.Components{}, err
	}
	components := dashboard.Components{
		Poller:    poller,
		Countdown: dashboard.NewCountdown(),
		Progress:  progress,
	}

	if config.RoadmapPath != "" && config.RoadmapLivePath != "" {
		roadmap, err := dashboard.NewStageFeed(client, dashboard.StageFeedConfig{
			Name:       "roadmap",
			StagesPath: config.RoadmapPath,
			LivePath:   config.RoadmapLivePath,
		}, metrics.NewStageFeed("roadmap"), logger)
		if err != nil {
			return dashboard.Components{}, err
		}
		components.Roadmap = roadmap
	}
	if config.PartnersPath != "" {
		partners, err := dashboard.NewPartnerFeed(client, config.PartnersPath, logger)
		if err != nil {
			return dashboard.Components{}, err
		}
		components.Partners = partners
	}
	return components, nil
}
