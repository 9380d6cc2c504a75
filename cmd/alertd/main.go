package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/config"
	pgrepo "github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/persistence/postgres"
	pkgkafka "github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/kafka"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/observability"
	pkgpostgres "github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/postgres"
)

const defaultSweepInterval = time.Hour

// alertEventTypes are the event types relayed to the alert topic for
// delivery to farmers over SMS and push channels.
var alertEventTypes = map[string]bool{
	"krishi.soil_report.created":       true,
	"krishi.loan_application.approved": true,
	"krishi.loan_application.rejected": true,
	"krishi.loan.disbursed":            true,
	"krishi.loan.repayment_received":   true,
	"krishi.harvest.matched":           true,
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load() //nolint:errcheck // .env is optional

	cfg := config.Load("alertd")
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	sweepInterval := defaultSweepInterval
	if raw := os.Getenv("ALERT_SWEEP_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			logger.Error("invalid ALERT_SWEEP_INTERVAL", "value", raw, "error", err)
			os.Exit(1)
		}
		sweepInterval = d
	}

	logger.Info("starting alertd", "sweep_interval", sweepInterval.String())

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	loanRepo := pgrepo.NewLoanRepo(pool)
	flagOverdue := usecase.NewFlagOverdueLoansUseCase(loanRepo)

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()

	relay := &alertRelay{producer: producer, logger: logger}
	consumer := pkgkafka.NewConsumer(pkgkafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGroup,
	}, pkgkafka.TopicEvents, relay.handle, logger)
	defer consumer.Close()

	errCh := make(chan error, 1)

	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			errCh <- err
		}
	}()

	go runSweep(ctx, flagOverdue, sweepInterval, logger)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("consumer error", "error", err)
	}

	logger.Info("alertd stopped")
}

// runSweep flags overdue loans on a fixed interval. One sweep runs
// immediately at startup so a restart cannot delay overdue detection by
// a full interval.
func runSweep(ctx context.Context, uc *usecase.FlagOverdueLoansUseCase, interval time.Duration, logger *slog.Logger) {
	sweep := func() {
		flagged, err := uc.Execute(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("overdue sweep failed", "error", err)
			return
		}
		if flagged > 0 {
			logger.Info("overdue sweep complete", "flagged", flagged)
		}
	}

	sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}

// alertRelay forwards farmer-facing events from the event stream to the
// alert topic, keyed by aggregate so alerts for one loan stay ordered.
type alertRelay struct {
	producer *pkgkafka.Producer
	logger   *slog.Logger
}

func (r *alertRelay) handle(ctx context.Context, msg pkgkafka.Message) error {
	eventType := msg.Headers["event_type"]
	if !alertEventTypes[eventType] {
		return nil
	}

	headers := map[string]string{
		"event_type": eventType,
		"channel":    channelFor(eventType),
	}
	if err := r.producer.Publish(ctx, pkgkafka.TopicAlerts, pkgkafka.Message{
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}); err != nil {
		return err
	}

	r.logger.Debug("alert relayed", "event_type", eventType, "key", string(msg.Key))
	return nil
}

// channelFor picks the delivery channel. Loan decisions go over SMS so
// they reach farmers without smartphones, everything else is push only.
func channelFor(eventType string) string {
	if strings.HasPrefix(eventType, "krishi.loan") {
		return "sms"
	}
	return "push"
}
