package main

import (
	"net/http"

	"canteen/api-gateway/internal/gateway"
	"canteen/config"
	"canteen/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(logger.Options{
		Service: "api-gateway",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	gw := gateway.NewGateway(gateway.Config{
		CanteenSvcURL:   cfg.CanteenSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{}, log)

	log.Infof("API Gateway starting on %s", cfg.GatewayAddr)
	log.Fatal(http.ListenAndServe(cfg.GatewayAddr, gw.SetupRoutes()))
}
