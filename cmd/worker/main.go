package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/planmoni-site/adapters/event"
	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	activityUC "github.com/khoahotran/planmoni-site/internal/application/usecase/activity"
	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("Starting Planmoni activity worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("Kafka brokers are required for the worker", nil)
	}
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("Worker is using the memory store, recorded activity is not visible to the server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := persistence.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Cannot open content store", err)
	}
	defer closeStore()

	managers, err := datamanager.Open(ctx, store, log, nil)
	if err != nil {
		log.Fatal("Cannot load content", err)
	}

	recorder := activityUC.NewActivityUseCase(managers.Activity, activityUC.Sources{}, log)

	consumer := event.NewActivityConsumer(cfg, recorder, log)
	defer consumer.Close()

	if err := consumer.Run(ctx); err != nil {
		log.Error("Consumer failed", err)
	}
	log.Info("Worker exited", zap.String("topic", cfg.Kafka.Topic))
}
