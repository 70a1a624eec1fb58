package producer

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/pc-builder/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

func (p *producer) Send(ctx context.Context, key, value []byte, headers ...kafka.Header) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	for _, h := range headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{
			Key:   []byte(h.Key),
			Value: h.Value,
		})
	}

	partition, offset, err := p.syncProducer.SendMessage(msg)
	if err != nil {
		p.logger.Error(ctx, "Failed to send message",
			zap.String("topic", p.topic),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info(ctx, "Message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("key", string(key)),
		zap.Int("value_size", len(value)),
	)

	return nil
}
