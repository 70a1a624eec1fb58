package consumer

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/you-humble/pc-builder/platform/kafka"
)

const (
	defaultMaxRetries = 5
	defaultRetryDelay = time.Second
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware

	maxRetries int
	retryDelay time.Duration
}

// NewConsumer builds a group consumer; middlewares wrap the handler outermost-first.
func NewConsumer(group sarama.ConsumerGroup, topics []string, logger Logger, middlewares ...kafka.Middleware) *consumer {
	return &consumer{
		group:       group,
		topics:      topics,
		logger:      logger,
		middlewares: middlewares,
		maxRetries:  defaultMaxRetries,
		retryDelay:  defaultRetryDelay,
	}
}

// WithRetry sets how many consecutive session errors are tolerated and the
// base delay between them. The delay doubles after each failure.
func (c *consumer) WithRetry(maxRetries int, delay time.Duration) *consumer {
	c.maxRetries = maxRetries
	c.retryDelay = delay
	return c
}

// Consume blocks until ctx is done or the group is closed, re-joining after
// rebalances. A cancelled ctx or a closed group is a clean stop.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	gh := NewGroupHandler(handler, c.logger, c.middlewares...)

	failures := 0
	delay := c.retryDelay
	for {
		err := c.group.Consume(ctx, c.topics, gh)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case ctx.Err() != nil:
			return nil
		case err == nil:
			failures, delay = 0, c.retryDelay
			c.logger.Info(ctx, "Kafka consumer group rebalancing", zap.Strings("topics", c.topics))
			continue
		}

		failures++
		if failures > c.maxRetries {
			c.logger.Error(ctx, "Kafka consume error, giving up",
				zap.Strings("topics", c.topics),
				zap.Int("failures", failures),
				zap.Error(err),
			)
			return errors.Wrapf(err, "consume %v", c.topics)
		}

		c.logger.Error(ctx, "Kafka consume error, retrying",
			zap.Strings("topics", c.topics),
			zap.Int("failures", failures),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		delay *= 2
	}
}
