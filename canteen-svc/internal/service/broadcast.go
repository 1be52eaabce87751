package service

import (
	"context"

	"canteen/events"

	"github.com/sirupsen/logrus"
)

// Event and change fan-out never fails the request that caused it.

func publishEvent(ctx context.Context, pub EventPublisher, log *logrus.Entry, msg events.OrderMessage) {
	if pub == nil {
		return
	}
	if err := pub.PublishOrderEvent(ctx, msg); err != nil {
		log.WithError(err).WithFields(logrus.Fields{"type": msg.Type, "order_id": msg.OrderID}).
			Warn("failed to publish order event")
	}
}

func notifyChange(ctx context.Context, n ChangeNotifier, log *logrus.Entry, channel, id string) {
	if n == nil {
		return
	}
	if err := n.Publish(ctx, channel, id); err != nil {
		log.WithError(err).WithFields(logrus.Fields{"channel": channel, "id": id}).
			Warn("failed to publish change notification")
	}
}
