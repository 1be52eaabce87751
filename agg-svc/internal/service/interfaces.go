package service

import (
	"context"

	"canteen/agg-svc/internal/storage"
	"canteen/events"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventKey string) (bool, error)
	UnmarkProcessed(ctx context.Context, eventKey string) error
	RecordOrder(ctx context.Context, day string, total float64, lines []events.OrderLine) error
	RecordRefund(ctx context.Context, day string, amount float64) error
	RecordStatus(ctx context.Context, day, status string) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg events.OrderMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
