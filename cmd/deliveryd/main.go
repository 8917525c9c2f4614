package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/copilot-skills-example/octocat-supply-api/internal/config"
	"github.com/copilot-skills-example/octocat-supply-api/internal/deliveries"
	kafkax "github.com/copilot-skills-example/octocat-supply-api/internal/kafka"
	"github.com/copilot-skills-example/octocat-supply-api/internal/logging"
	"github.com/copilot-skills-example/octocat-supply-api/internal/orders"
	"github.com/copilot-skills-example/octocat-supply-api/internal/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat).WithField("service", cfg.ServiceName+"-deliveryd")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	defer db.Close()

	svc := &deliveries.Service{
		Sched: &deliveries.Repo{DB: db},
		Log:   log.WithField("component", "deliveries"),
	}

	group := getenv("DELIVERYD_GROUP", "deliveryd")
	workers := atoi(getenv("DELIVERYD_WORKERS", "4"))
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicOrderCreated, workers,
		log.WithField("component", "kafka-consumer"))

	go func() {
		log.WithField("group", group).WithField("topic", orders.TopicOrderCreated).Info("consumer started")
		if err := cons.Start(ctx, svc.HandleOrderCreated); err != nil {
			log.WithError(err).Error("consumer exit")
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down")
	cancel()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
