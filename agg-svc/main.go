package main

import (
	"context"
	"os/signal"
	"syscall"

	"canteen/agg-svc/internal/service"
	"canteen/agg-svc/internal/storage"
	"canteen/config"
	"canteen/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(logger.Options{
		Service: "agg-svc",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb, cfg.AggregateTTL), log)
	consumer.Start(ctx)
}
