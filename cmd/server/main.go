package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/warehouse-cluster/internal/adapter/audit"
	"github.com/rl1809/warehouse-cluster/internal/adapter/handler"
	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/config"
	"github.com/rl1809/warehouse-cluster/internal/core/service"
	"github.com/rl1809/warehouse-cluster/internal/port"
)

const reporterQueueSize = 1024

func main() {
	cfg := loadConfig()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Reporter: best-effort audit delivery, or a no-op when no logger
	// service is configured.
	var reporter port.OperationReporter = audit.NopReporter{}
	if cfg.LoggerEndpoint != "" {
		r, err := audit.NewGRPCReporter(cfg.LoggerEndpoint, reporterQueueSize, logger)
		if err != nil {
			logger.Fatal("failed to connect logger service", zap.Error(err))
		}
		reporter = r
		logger.Info("audit reporting enabled", zap.String("endpoint", cfg.LoggerEndpoint))
	}

	store := service.NewInventoryService()

	grpcServer := grpc.NewServer(grpc.NumStreamWorkers(uint32(cfg.Workers)))
	pb.RegisterInventoryServiceServer(grpcServer, handler.NewGRPCHandler(store, reporter, logger))

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.Listen), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	httpHandler := handler.NewHTTPHandler(store)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)

	httpServer := &http.Server{
		Addr:    cfg.HTTPListen,
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPListen))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	if err := reporter.Close(); err != nil {
		logger.Error("failed to close reporter", zap.Error(err))
	}
	logger.Info("reporter stopped")
}

// loadConfig merges defaults, an optional TOML file and command-line
// flags, in that order.
func loadConfig() config.NodeConfig {
	cfg := config.DefaultNodeConfig()

	configPath := flag.String("config", "", "path to TOML config file")
	listen := flag.String("listen", cfg.Listen, "gRPC listen address")
	httpListen := flag.String("http-listen", cfg.HTTPListen, "HTTP listen address")
	workers := flag.Int("workers", cfg.Workers, "gRPC stream worker count")
	loggerEndpoint := flag.String("logger-endpoint", cfg.LoggerEndpoint, "logger service endpoint (empty disables audit reporting)")
	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath, &cfg); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	// Explicit flags win over file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "http-listen":
			cfg.HTTPListen = *httpListen
		case "workers":
			cfg.Workers = *workers
		case "logger-endpoint":
			cfg.LoggerEndpoint = *loggerEndpoint
		case "debug":
			cfg.Debug = *debug
		}
	})

	return cfg
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
