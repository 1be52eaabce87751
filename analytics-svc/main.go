package main

import (
	httpapi "canteen/analytics-svc/internal/api/http"
	"canteen/analytics-svc/internal/service"
	"canteen/analytics-svc/internal/storage"
	"canteen/config"
	"canteen/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(logger.Options{
		Service: "analytics-svc",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	analytics := service.NewAnalyticsService(
		storage.NewPostgresRepository(db),
		storage.NewRedisAggregates(rdb),
		log,
	)
	handler := httpapi.NewHandler(analytics, storage.NewCanteenClient(cfg.CanteenSvcURL), log)

	httpapi.StartServer(cfg.AnalyticsAddr, httpapi.NewRouter(handler), log)
}
