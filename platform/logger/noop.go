package logger

import (
	"context"

	"go.uber.org/zap"
)

// NoopLogger satisfies the small Info/Error logger interfaces of the platform packages.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...zap.Field)  {}
func (NoopLogger) Error(context.Context, string, ...zap.Field) {}
