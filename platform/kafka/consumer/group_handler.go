package consumer

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/pc-builder/platform/kafka"
)

// groupHandler adapts a MessageHandler to sarama.ConsumerGroupHandler.
// A message is marked only when the handler succeeds.
type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

// NewGroupHandler wraps handler with the middleware chain.
func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return &groupHandler{handler: handler, logger: logger}
}

func (g *groupHandler) Setup(session sarama.ConsumerGroupSession) error {
	for topic, partitions := range session.Claims() {
		g.logger.Info(session.Context(), "Kafka partitions claimed",
			zap.String("topic", topic),
			zap.Int32s("partitions", partitions),
			zap.String("member_id", session.MemberID()),
		)
	}
	return nil
}

func (g *groupHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	g.logger.Info(session.Context(), "Kafka session ended", zap.Int32("generation", session.GenerationID()))
	return nil
}

func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case record, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			msg := toMessage(record)
			if err := g.handler(ctx, msg); err != nil {
				g.logger.Error(ctx, "Kafka handler error",
					zap.String("topic", msg.Topic),
					zap.Int32("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}

			session.MarkMessage(record, "")

		case <-ctx.Done():
			return nil
		}
	}
}

func toMessage(record *sarama.ConsumerMessage) kafka.Message {
	headers := make(map[string][]byte, len(record.Headers))
	for _, h := range record.Headers {
		if h != nil && h.Key != nil {
			headers[string(h.Key)] = h.Value
		}
	}

	return kafka.Message{
		Headers:        headers,
		Timestamp:      record.Timestamp,
		BlockTimestamp: record.BlockTimestamp,
		Key:            record.Key,
		Value:          record.Value,
		Topic:          record.Topic,
		Partition:      record.Partition,
		Offset:         record.Offset,
	}
}
