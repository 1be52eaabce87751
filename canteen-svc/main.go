package main

import (
	"context"
	"fmt"

	httpapi "canteen/canteen-svc/internal/api/http"
	"canteen/canteen-svc/internal/service"
	"canteen/canteen-svc/internal/storage"
	"canteen/config"
	"canteen/logger"
)

func newIdentity(ctx context.Context, cfg *config.Config, repo *storage.PostgresRepository) (service.IdentityProvider, error) {
	switch cfg.AuthProvider {
	case "", "local":
		return storage.NewLocalIdentity(repo), nil
	case "firebase":
		return storage.NewFirebaseIdentity(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	default:
		return nil, fmt.Errorf("unknown AUTH_PROVIDER: %s", cfg.AuthProvider)
	}
}

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()
	log := logger.New(logger.Options{
		Service: "canteen-svc",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	db := config.MustInitPostgres(cfg)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	notifier := storage.NewRedisNotifier(rdb)

	kafkaWriter := config.NewKafkaWriter(cfg)
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	objects, err := storage.NewObjectStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to init object storage: %v", err)
	}

	identity, err := newIdentity(ctx, cfg, repo)
	if err != nil {
		log.Fatalf("Failed to init identity provider: %v", err)
	}

	carts := storage.NewRedisCarts(rdb, cfg.CartTTL)
	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}

	handler := httpapi.NewHandler(httpapi.Services{
		Auth:       service.NewAuthService(repo, identity, storage.NewRedisSessions(rdb), cfg.SessionTTL, cfg.StaffEmails, log),
		Categories: service.NewCategoryService(repo),
		Menu:       service.NewMenuService(repo, objects, log),
		Carts:      service.NewCartService(carts, repo),
		Orders:     service.NewOrderService(repo, repo, carts, qr, publisher, notifier, log),
		Receipts:   service.NewReceiptService(repo, repo),
		Refunds:    service.NewRefundService(repo, repo, publisher, notifier, log),
	}, notifier, log)

	uploadDir := ""
	if cfg.StorageDriver == "" || cfg.StorageDriver == "local" {
		uploadDir = cfg.LocalUploadDir
	}

	httpapi.StartServer(cfg.CanteenAddr, httpapi.NewRouter(handler, uploadDir), log)
}
