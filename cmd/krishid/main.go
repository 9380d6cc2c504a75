package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/adapter"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/config"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/messaging"
	pgrepo "github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/persistence/postgres"
	grpcpresentation "github.com/Ashuj56/krishiconnect-SIH-sub001/internal/presentation/grpc"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/presentation/rest"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/auth"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
	pkgkafka "github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/kafka"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/observability"
	pkgpostgres "github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load() //nolint:errcheck // .env is optional

	cfg := config.Load("krishid")
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting krishid",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Database.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(cfg.DB.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck
	httpMetrics := observability.NewHTTPMetrics(cfg.ServiceName)

	// Infrastructure adapters.
	soilRepo := pgrepo.NewSoilReportRepo(pool)
	appRepo := pgrepo.NewLoanApplicationRepo(pool)
	loanRepo := pgrepo.NewLoanRepo(pool)
	batchRepo := pgrepo.NewHarvestBatchRepo(pool)
	vendorRepo := pgrepo.NewVendorRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, logger)

	weatherClient := adapter.NewOpenMeteoWeather(cfg.Weather)
	var doctor port.CropDoctor
	if cfg.Gemini.APIKey != "" {
		doctor = adapter.NewGeminiCropDoctor(cfg.Gemini)
	} else {
		logger.Warn("GEMINI_API_KEY not set, using stub crop doctor")
		doctor = adapter.NewStubCropDoctor()
	}

	// Domain services.
	catalog := i18n.MustLoad()
	recoGen := service.NewRecommendationGenerator(catalog)
	engine := service.NewEligibilityEngine()
	advisor := service.NewCropAdvisor(catalog)
	grader := service.NewHarvestGrader()

	// Use cases.
	analyzeSoilUC := usecase.NewAnalyzeSoilUseCase(soilRepo, publisher, recoGen)
	getSoilUC := usecase.NewGetSoilReportUseCase(soilRepo, recoGen)
	applyUC := usecase.NewApplyForLoanUseCase(appRepo, publisher, engine, catalog)
	disburseUC := usecase.NewDisburseLoanUseCase(appRepo, loanRepo, publisher)
	repayUC := usecase.NewRecordRepaymentUseCase(loanRepo, publisher, catalog)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	advisoryUC := usecase.NewGetAdvisoryUseCase(weatherClient, advisor, catalog)
	diagnoseUC := usecase.NewDiagnoseCropUseCase(doctor, catalog)
	matchUC := usecase.NewMatchHarvestUseCase(batchRepo, vendorRepo, publisher, grader, catalog)
	vendorsUC := usecase.NewListVendorsUseCase(vendorRepo)
	getVendorUC := usecase.NewGetVendorUseCase(vendorRepo)

	// JWT.
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.Auth.Secret,
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	grpcHandler := grpcpresentation.NewAdvisoryHandler(analyzeSoilUC, engine, advisor)
	grpcServer := grpcpresentation.NewServer(grpcHandler, logger, jwtSvc)

	// HTTP server.
	router := &rest.Router{
		Health:         rest.NewHealthHandler(cfg.ServiceName, pool),
		Soil:           rest.NewSoilHandler(analyzeSoilUC, getSoilUC, logger),
		Loans:          rest.NewLoanHandler(applyUC, disburseUC, repayUC, getLoanUC, logger),
		Advisory:       rest.NewAdvisoryHandler(advisoryUC, diagnoseUC, logger),
		Market:         rest.NewMarketHandler(matchUC, vendorsUC, getVendorUC, logger),
		Logger:         logger,
		Metrics:        httpMetrics,
		JWT:            jwtSvc,
		MetricsHandler: metricsHandler,
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("krishid stopped")
}
