package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/router"
	grpcServer "github.com/dtroode/studyflow-waitlist/internal/api/grpc/server"
	"github.com/dtroode/studyflow-waitlist/internal/api/web"
	"github.com/dtroode/studyflow-waitlist/internal/config"
	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/metrics"
	"github.com/dtroode/studyflow-waitlist/internal/model"
	"github.com/dtroode/studyflow-waitlist/internal/repository/postgres"
	"github.com/dtroode/studyflow-waitlist/internal/repository/sqlite"
	"github.com/dtroode/studyflow-waitlist/internal/server"
	"github.com/dtroode/studyflow-waitlist/internal/service"
	storage "github.com/dtroode/studyflow-waitlist/internal/storage/minio"
	"github.com/dtroode/studyflow-waitlist/internal/telemetry"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel.Endpoint, cfg.OTel.ServiceName)
	if err != nil {
		logger.Fatal("failed to initialize tracing", "error", err)
	}

	store, closer, err := openDocumentStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize document store", "driver", cfg.Store.Driver, "error", err)
	}
	defer closer.Close()
	logger.Info("document store ready", "driver", cfg.Store.Driver)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	documentService := service.NewDocuments(store, recorder, logger)

	r := router.New(documentService, logger)
	grpcSrv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	content, err := web.DefaultContent()
	if err != nil {
		logger.Fatal("failed to load landing content", "error", err)
	}
	handler, err := web.NewHandler(documentService, content, web.FormSettings{
		Collection:        cfg.Waitlist.Collection,
		Source:            cfg.Waitlist.Source,
		SuccessResetDelay: cfg.Waitlist.SuccessResetDelay,
		ErrorResetDelay:   cfg.Waitlist.ErrorResetDelay,
	}, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}), logger)
	if err != nil {
		logger.Fatal("failed to initialize web handler", "error", err)
	}
	httpSrv := web.NewHTTPServer(handler.Routes(), fmt.Sprintf(":%s", cfg.HTTP.Port),
		cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.IdleTimeout)

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	servers := []model.Server{grpcSrv, httpSrv}

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(srv)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	r.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, srv := range servers {
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", srv.Address())
		}
	}

	wg.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func openDocumentStore(ctx context.Context, cfg *config.Config) (model.DocumentStore, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewDocumentRepository(db), db, nil

	case config.DriverMinio:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		client, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			return nil, nil, err
		}
		return client, closerFunc(func() error { return nil }), nil

	default:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewDocumentRepository(db), db, nil
	}
}
