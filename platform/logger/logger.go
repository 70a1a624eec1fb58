package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	mu           sync.RWMutex
	globalLogger *logger
	dynamicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

type logger struct {
	zapLogger *zap.Logger
}

// Init builds the global logger. Calling it again replaces the previous one.
func Init(levelStr string, asJSON bool) error {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", levelStr, err)
	}
	dynamicLevel.SetLevel(level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if asJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), dynamicLevel)

	mu.Lock()
	globalLogger = &logger{zapLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

// SetNopLogger discards everything. Used by tests.
func SetNopLogger() {
	mu.Lock()
	globalLogger = &logger{zapLogger: zap.NewNop()}
	mu.Unlock()
}

func SetLevel(levelStr string) error {
	level, err := zapcore.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return err
	}
	dynamicLevel.SetLevel(level)
	return nil
}

// L returns the global logger, or a no-op logger before Init.
func L() *logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &logger{zapLogger: zap.NewNop()}
	}
	return globalLogger
}

func Sync() error {
	return L().zapLogger.Sync()
}

// WithRequestID stores the request id that is attached to every record logged with ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func With(fields ...zap.Field) *logger {
	return L().With(fields...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	L().Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	L().Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	L().Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	L().Error(ctx, msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	L().Fatal(ctx, msg, fields...)
}

func (l *logger) With(fields ...zap.Field) *logger {
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, withContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, withContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, withContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, withContext(ctx, fields)...)
}

func (l *logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.zapLogger.Fatal(msg, withContext(ctx, fields)...)
}

func withContext(ctx context.Context, fields []zap.Field) []zap.Field {
	if id := RequestID(ctx); id != "" {
		return append(fields, zap.String("request_id", id))
	}
	return fields
}
