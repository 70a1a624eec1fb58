package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/you-humble/pc-builder/platform/kafka"
)

const headerEventType = "event_type"

type InfoLogger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
}

// Logging records every delivery with its position and how long the handler took.
func Logging(logger InfoLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)

			fields := []zap.Field{
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Int("value_size", len(msg.Value)),
				zap.Duration("duration", time.Since(start)),
				zap.Bool("ok", err == nil),
			}
			if et := msg.Header(headerEventType); et != "" {
				fields = append(fields, zap.String(headerEventType, et))
			}
			logger.Info(ctx, "Kafka msg handled", fields...)

			return err
		}
	}
}
