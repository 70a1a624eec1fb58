package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/you-humble/pc-builder/platform/kafka"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(_ context.Context, msg string, _ ...zap.Field) {
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...zap.Field) {
	l.errors = append(l.errors, msg)
}

func TestRecoveryConvertsPanicToError(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	h := Recovery(log)(func(context.Context, kafka.Message) error {
		panic("bad payload")
	})

	err := h(context.Background(), kafka.Message{Topic: "catalog.updated"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "bad payload")
	assert.Len(t, log.errors, 1)
}

func TestRecoveryPassesThroughHandlerResult(t *testing.T) {
	t.Parallel()

	errHandler := errors.New("handler failed")
	log := &recordingLogger{}

	h := Recovery(log)(func(context.Context, kafka.Message) error { return errHandler })
	assert.ErrorIs(t, h(context.Background(), kafka.Message{}), errHandler)

	h = Recovery(log)(func(context.Context, kafka.Message) error { return nil })
	assert.NoError(t, h(context.Background(), kafka.Message{}))
	assert.Empty(t, log.errors)
}

func TestLoggingCallsNext(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	called := false

	h := Logging(log)(func(_ context.Context, msg kafka.Message) error {
		called = true
		assert.Equal(t, "v1", msg.Header("schema"))
		return nil
	})

	err := h(context.Background(), kafka.Message{
		Topic:   "catalog.updated",
		Headers: map[string][]byte{"schema": []byte("v1")},
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []string{"Kafka msg handled"}, log.infos)
}
