package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"canteen/events"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *logrus.Entry
	// Now stamps events that arrive without a timestamp.
	Now func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface, log *logrus.Entry) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
		Now:    time.Now,
	}
}

// Start reads the orders topic until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Log.Info("Aggregation consumer stopped")
				return
			}
			c.Log.WithError(err).Error("Error reading message")
			continue
		}

		var msg events.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Log.WithError(err).WithField("offset", message.Offset).Warn("Skipping malformed message")
			continue
		}

		if err := c.Process(ctx, msg); err != nil {
			c.Log.WithError(err).WithFields(logrus.Fields{
				"type":     msg.Type,
				"order_id": msg.OrderID,
			}).Error("Failed to aggregate event")
		}
	}
}

// Process folds one order event into the daily aggregates. Redelivered events
// are counted once.
func (c *Consumer) Process(ctx context.Context, msg events.OrderMessage) error {
	switch msg.Type {
	case events.OrderCreated, events.OrderStatusChanged, events.RefundReviewed:
	default:
		c.Log.WithField("type", msg.Type).Debug("Ignoring event type")
		return nil
	}

	at := msg.Timestamp
	if at.IsZero() {
		at = c.Now()
	}
	day := events.DayKey(at)

	key := eventKey(msg, at)
	fresh, err := c.Store.MarkProcessed(ctx, key)
	if err != nil {
		c.Log.WithError(err).Warn("Failed to set processed marker")
	} else if !fresh {
		c.Log.WithField("order_id", msg.OrderID).Debug("Skipping duplicate event")
		return nil
	}

	if err := c.apply(ctx, day, msg); err != nil {
		if fresh {
			if uerr := c.Store.UnmarkProcessed(ctx, key); uerr != nil {
				c.Log.WithError(uerr).Warn("Failed to release processed marker")
			}
		}
		return err
	}
	return nil
}

func (c *Consumer) apply(ctx context.Context, day string, msg events.OrderMessage) error {
	switch msg.Type {
	case events.OrderCreated:
		return c.Store.RecordOrder(ctx, day, msg.TotalAmount, msg.Items)
	case events.OrderStatusChanged:
		if msg.Status == "" {
			return nil
		}
		return c.Store.RecordStatus(ctx, day, msg.Status)
	default:
		if msg.RefundStatus != events.RefundApproved {
			return nil
		}
		return c.Store.RecordRefund(ctx, day, msg.TotalAmount)
	}
}

func eventKey(msg events.OrderMessage, at time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d", msg.Type, msg.OrderID, msg.RefundID, msg.Status, at.UnixNano())
}
