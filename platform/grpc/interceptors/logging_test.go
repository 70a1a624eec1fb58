package interceptors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	infos, errors []string
}

func (l *recordingLogger) Info(_ context.Context, msg string, _ ...zap.Field) {
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...zap.Field) {
	l.errors = append(l.errors, msg)
}

func TestUnaryLogging(t *testing.T) {
	t.Parallel()

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		l := &recordingLogger{}
		resp, err := UnaryLogging(l)(context.Background(), "req", info,
			func(context.Context, any) (any, error) { return "resp", nil })

		require.NoError(t, err)
		assert.Equal(t, "resp", resp)
		assert.Len(t, l.infos, 1)
		assert.Empty(t, l.errors)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		l := &recordingLogger{}
		_, err := UnaryLogging(l)(context.Background(), "req", info,
			func(context.Context, any) (any, error) { return nil, status.Error(codes.NotFound, "unknown service") })

		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
		assert.Empty(t, l.infos)
		assert.Len(t, l.errors, 1)
	})
}
