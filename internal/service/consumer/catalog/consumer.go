package catalogconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/kafka"
	"github.com/you-humble/pc-builder/platform/logger"
)

type Converter interface {
	CatalogUpdatedToModel(data []byte) (model.CatalogUpdated, error)
}

type Service interface {
	Load(ctx context.Context) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service
}

func NewCatalogConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

func (s *service) RunCatalogUpdatedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting catalog updated consumer")

	if err := s.consumer.Consume(ctx, s.catalogUpdatedHandler); err != nil {
		logger.Error(ctx, "Consume from catalog.updated topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) catalogUpdatedHandler(ctx context.Context, msg kafka.Message) error {
	ev, err := s.conv.CatalogUpdatedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode CatalogUpdated", logger.ErrorF(err))
		return fmt.Errorf("converter catalog_updated_to_model error: %w", err)
	}

	cats := make([]string, 0, len(ev.Categories))
	for _, c := range ev.Categories {
		cats = append(cats, c.String())
	}
	logger.Info(ctx, "catalog updated",
		logger.String("event_id", ev.EventID.String()),
		logger.Strings("categories", cats),
	)

	if err := s.svc.Load(ctx); err != nil {
		logger.Error(ctx, "consumer.ReloadCatalog", logger.ErrorF(err))
		return err
	}

	return nil
}
