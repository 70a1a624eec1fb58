package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/pc-builder/internal/model"
)

const (
	fieldEventID    = "event_uuid"
	fieldBuildID    = "build_uuid"
	fieldItems      = "items"
	fieldCategory   = "kategori"
	fieldCategories = "kategoriler"
	fieldPartID     = "id"
	fieldName       = "ad"
	fieldPrice      = "fiyat_try"
	fieldTotal      = "toplam_try"
	fieldOccurredAt = "occurred_at"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) CartCheckedOutToPayload(ev model.CartCheckedOut) ([]byte, error) {
	items := lo.Map(ev.Items, func(it model.CheckedOutItem, _ int) any {
		return map[string]any{
			fieldCategory: it.Category.String(),
			fieldPartID:   it.PartID,
			fieldName:     it.Name,
			fieldPrice:    it.Price,
		}
	})

	pb, err := structpb.NewStruct(map[string]any{
		fieldEventID:    ev.EventID.String(),
		fieldBuildID:    ev.BuildID.String(),
		fieldItems:      items,
		fieldTotal:      ev.Total,
		fieldOccurredAt: ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) CartCheckedOutToModel(data []byte) (model.CartCheckedOut, error) {
	fields, err := unmarshalStruct(data)
	if err != nil {
		return model.CartCheckedOut{}, err
	}

	eventID, err := uuidField(fields, fieldEventID)
	if err != nil {
		return model.CartCheckedOut{}, err
	}
	buildID, err := uuidField(fields, fieldBuildID)
	if err != nil {
		return model.CartCheckedOut{}, err
	}
	occurredAt, err := timeField(fields, fieldOccurredAt)
	if err != nil {
		return model.CartCheckedOut{}, err
	}

	ev := model.CartCheckedOut{
		EventID:    eventID,
		BuildID:    buildID,
		Total:      fields[fieldTotal].GetNumberValue(),
		OccurredAt: occurredAt,
	}
	for _, v := range fields[fieldItems].GetListValue().GetValues() {
		item := v.GetStructValue().GetFields()
		cat, err := model.ParseCategory(item[fieldCategory].GetStringValue())
		if err != nil {
			return model.CartCheckedOut{}, err
		}
		ev.Items = append(ev.Items, model.CheckedOutItem{
			Category: cat,
			PartID:   item[fieldPartID].GetStringValue(),
			Name:     item[fieldName].GetStringValue(),
			Price:    item[fieldPrice].GetNumberValue(),
		})
	}

	return ev, nil
}

func (c *kafkaConverter) CatalogUpdatedToPayload(ev model.CatalogUpdated) ([]byte, error) {
	cats := lo.Map(ev.Categories, func(cat model.Category, _ int) any { return cat.String() })

	pb, err := structpb.NewStruct(map[string]any{
		fieldEventID:    ev.EventID.String(),
		fieldCategories: cats,
		fieldOccurredAt: ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

// CatalogUpdatedToModel decodes a catalog change notification. Unknown
// category names are skipped; an empty list means the whole catalog.
func (c *kafkaConverter) CatalogUpdatedToModel(data []byte) (model.CatalogUpdated, error) {
	fields, err := unmarshalStruct(data)
	if err != nil {
		return model.CatalogUpdated{}, err
	}

	eventID, err := uuidField(fields, fieldEventID)
	if err != nil {
		return model.CatalogUpdated{}, err
	}

	ev := model.CatalogUpdated{EventID: eventID}
	if _, ok := fields[fieldOccurredAt]; ok {
		if ev.OccurredAt, err = timeField(fields, fieldOccurredAt); err != nil {
			return model.CatalogUpdated{}, err
		}
	}
	for _, v := range fields[fieldCategories].GetListValue().GetValues() {
		if cat, err := model.ParseCategory(v.GetStringValue()); err == nil {
			ev.Categories = append(ev.Categories, cat)
		}
	}

	return ev, nil
}

func unmarshalStruct(data []byte) (map[string]*structpb.Value, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}
	return pb.GetFields(), nil
}

func uuidField(fields map[string]*structpb.Value, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(fields[key].GetStringValue())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %w", model.ErrInvalidArgument, key, err)
	}
	return id, nil
}

func timeField(fields map[string]*structpb.Value, key string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, fields[key].GetStringValue())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", model.ErrInvalidArgument, key, err)
	}
	return t, nil
}
