package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/you-humble/pc-builder/platform/kafka"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Recovery turns a panic in the handler into an error, so the message is not marked.
func Recovery(logger ErrorLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				logger.Error(ctx, "panic in kafka handler",
					zap.String("topic", msg.Topic),
					zap.Int32("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = fmt.Errorf("kafka handler panic at %s/%d@%d: %v", msg.Topic, msg.Partition, msg.Offset, r)
			}()
			return next(ctx, msg)
		}
	}
}
