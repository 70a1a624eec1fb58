package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	const op = "repository.EnsureIndexes"

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "kategori", Value: 1}, {Key: "marka", Value: 1}}},
		{Keys: bson.D{{Key: "kategori", Value: 1}, {Key: "fiyat_try", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) PartByID(ctx context.Context, id string) (model.Item, error) {
	const op = "repository.PartByID"

	raw, err := r.coll.FindOne(ctx, bson.M{"_id": id}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	key, ok := raw.Lookup("kategori").StringValueOK()
	if !ok {
		return nil, fmt.Errorf("%s: part %q has no category", op, id)
	}
	c, err := model.ParseCategory(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := decodeRaw(c, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// List returns the parts of one category matching the stored criteria of f, in insertion order.
func (r *repository) List(ctx context.Context, c model.Category, f model.PartsFilter) ([]model.Item, error) {
	const op = "repository.List"

	if !c.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownCategory)
	}

	items, err := r.find(ctx, c, BuildMongoFilter(c, f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	const op = "repository.Count"

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (r *repository) CreateBatch(ctx context.Context, items []model.Item) error {
	const op = "repository.CreateBatch"

	now := time.Now()
	docs := make([]any, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.Base().ID == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		doc, err := EntityFromModel(it, now)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) find(ctx context.Context, c model.Category, filter bson.M) ([]model.Item, error) {
	switch c {
	case model.CategoryMotherboard:
		return findAll[MotherboardEntity](ctx, r.coll, filter)
	case model.CategoryCPU:
		return findAll[ProcessorEntity](ctx, r.coll, filter)
	case model.CategoryRAM:
		return findAll[MemoryEntity](ctx, r.coll, filter)
	case model.CategoryGPU:
		return findAll[GPUEntity](ctx, r.coll, filter)
	case model.CategoryPSU:
		return findAll[PSUEntity](ctx, r.coll, filter)
	case model.CategoryCase:
		return findAll[CaseEntity](ctx, r.coll, filter)
	case model.CategoryStorage:
		return findAll[StorageEntity](ctx, r.coll, filter)
	case model.CategoryMonitor:
		return findAll[MonitorEntity](ctx, r.coll, filter)
	case model.CategoryKeyboard:
		return findAll[KeyboardEntity](ctx, r.coll, filter)
	case model.CategoryMouse:
		return findAll[MouseEntity](ctx, r.coll, filter)
	case model.CategoryCooler:
		return findAll[CoolerEntity](ctx, r.coll, filter)
	case model.CategoryUnknown:
	}
	return nil, model.ErrUnknownCategory
}

func findAll[E entity](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]model.Item, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]model.Item, 0)
	for cur.Next(ctx) {
		var ent E
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, ent.ToModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return out, nil
}

func decodeRaw(c model.Category, raw bson.Raw) (model.Item, error) {
	switch c {
	case model.CategoryMotherboard:
		return decodeOne[MotherboardEntity](raw)
	case model.CategoryCPU:
		return decodeOne[ProcessorEntity](raw)
	case model.CategoryRAM:
		return decodeOne[MemoryEntity](raw)
	case model.CategoryGPU:
		return decodeOne[GPUEntity](raw)
	case model.CategoryPSU:
		return decodeOne[PSUEntity](raw)
	case model.CategoryCase:
		return decodeOne[CaseEntity](raw)
	case model.CategoryStorage:
		return decodeOne[StorageEntity](raw)
	case model.CategoryMonitor:
		return decodeOne[MonitorEntity](raw)
	case model.CategoryKeyboard:
		return decodeOne[KeyboardEntity](raw)
	case model.CategoryMouse:
		return decodeOne[MouseEntity](raw)
	case model.CategoryCooler:
		return decodeOne[CoolerEntity](raw)
	case model.CategoryUnknown:
	}
	return nil, model.ErrUnknownCategory
}

func decodeOne[E entity](raw bson.Raw) (model.Item, error) {
	var ent E
	if err := bson.Unmarshal(raw, &ent); err != nil {
		return nil, err
	}
	return ent.ToModel(), nil
}
