package buildproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/kafka"
)

const headerEventType = "event_type"

const eventCartCheckedOut = "build.checked_out"

type Converter interface {
	CartCheckedOutToPayload(ev model.CartCheckedOut) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewBuildProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendCartCheckedOut(ctx context.Context, ev model.CartCheckedOut) error {
	payload, err := s.conv.CartCheckedOutToPayload(ev)
	if err != nil {
		return fmt.Errorf("converter cart_checked_out_to_proto error: %w", err)
	}

	err = s.producer.Send(ctx, ev.BuildID[:], payload,
		kafka.Header{Key: headerEventType, Value: []byte(eventCartCheckedOut)},
	)
	if err != nil {
		return fmt.Errorf("producer to build.checked_out topic error: %w", err)
	}

	return nil
}
