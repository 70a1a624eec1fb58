package interceptors

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// UnaryLogging logs method, status code and duration of every unary call.
func UnaryLogging(logger Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := path.Base(info.FullMethod)
		start := time.Now()

		resp, err := handler(ctx, req)

		d := time.Since(start)
		if err != nil {
			st, _ := status.FromError(err)
			logger.Error(ctx, "grpc call failed",
				zap.String("method", method),
				zap.String("code", st.Code().String()),
				zap.Duration("duration", d),
				zap.Error(err),
			)
			return resp, err
		}

		logger.Info(ctx, "grpc call",
			zap.String("method", method),
			zap.String("code", "OK"),
			zap.Duration("duration", d),
		)
		return resp, nil
	}
}
