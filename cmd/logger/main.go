package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler"
	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/adapter/storage"
	"github.com/rl1809/warehouse-cluster/internal/config"
	"github.com/rl1809/warehouse-cluster/internal/core/service"
	"github.com/rl1809/warehouse-cluster/internal/port"
)

func main() {
	cfg := loadConfig()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, cleanup := openRepository(ctx, cfg, logger)
	defer cleanup()

	auditService := service.NewAuditService(repo)

	grpcServer := grpc.NewServer()
	pb.RegisterLoggerServiceServer(grpcServer, handler.NewLoggerHandler(auditService, logger))

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.Listen), zap.Error(err))
	}

	go func() {
		logger.Info("logger service listening",
			zap.String("addr", lis.Addr().String()),
			zap.String("backend", cfg.Backend))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}

func openRepository(ctx context.Context, cfg config.LoggerConfig, logger *zap.Logger) (port.AuditRepository, func()) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemoryAdapter(), func() {}

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			logger.Fatal("failed to connect mysql", zap.Error(err))
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			logger.Fatal("failed to ping mysql", zap.Error(err))
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
		logger.Info("connected to mysql")
		return adapter, func() { db.Close() }

	default:
		logger.Fatal("unknown audit backend", zap.String("backend", cfg.Backend))
		return nil, nil
	}
}

func loadConfig() config.LoggerConfig {
	cfg := config.DefaultLoggerConfig()

	configPath := flag.String("config", "", "path to TOML config file")
	listen := flag.String("listen", cfg.Listen, "gRPC listen address")
	backend := flag.String("backend", cfg.Backend, "audit backend: memory, redis or mysql")
	redisAddr := flag.String("redis-addr", cfg.RedisAddr, "redis address for the redis backend")
	mysqlDSN := flag.String("mysql-dsn", cfg.MySQLDSN, "mysql DSN for the mysql backend")
	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath, &cfg); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "backend":
			cfg.Backend = *backend
		case "redis-addr":
			cfg.RedisAddr = *redisAddr
		case "mysql-dsn":
			cfg.MySQLDSN = *mysqlDSN
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
