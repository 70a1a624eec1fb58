package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/you-humble/pc-builder/internal/model"
)

//go:embed seed/*.json
var seedFS embed.FS

type BatchCreator interface {
	CreateBatch(ctx context.Context, items []model.Item) error
}

// PartsBootstrap inserts the bundled catalog.
func PartsBootstrap(ctx context.Context, c BatchCreator) error {
	parts, err := SeedCatalog()
	if err != nil {
		return err
	}

	items := make([]model.Item, 0)
	for _, cat := range model.Categories {
		items = append(items, parts[cat]...)
	}

	return c.CreateBatch(ctx, items)
}

// SeedCatalog parses the bundled per-category JSON documents.
func SeedCatalog() (map[model.Category][]model.Item, error) {
	const op = "repository.SeedCatalog"

	out := make(map[model.Category][]model.Item, len(model.Categories))
	for _, cat := range model.Categories {
		data, err := seedFS.ReadFile("seed/" + cat.String() + ".json")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items, err := ParseCategoryJSON(cat, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, cat, err)
		}
		out[cat] = items
	}

	return out, nil
}

// ParseCategoryJSON decodes a JSON array of documents of category c.
func ParseCategoryJSON(c model.Category, data []byte) ([]model.Item, error) {
	switch c {
	case model.CategoryMotherboard:
		return parseJSON[MotherboardEntity](data)
	case model.CategoryCPU:
		return parseJSON[ProcessorEntity](data)
	case model.CategoryRAM:
		return parseJSON[MemoryEntity](data)
	case model.CategoryGPU:
		return parseJSON[GPUEntity](data)
	case model.CategoryPSU:
		return parseJSON[PSUEntity](data)
	case model.CategoryCase:
		return parseJSON[CaseEntity](data)
	case model.CategoryStorage:
		return parseJSON[StorageEntity](data)
	case model.CategoryMonitor:
		return parseJSON[MonitorEntity](data)
	case model.CategoryKeyboard:
		return parseJSON[KeyboardEntity](data)
	case model.CategoryMouse:
		return parseJSON[MouseEntity](data)
	case model.CategoryCooler:
		return parseJSON[CoolerEntity](data)
	case model.CategoryUnknown:
	}
	return nil, model.ErrUnknownCategory
}

func parseJSON[E entity](data []byte) ([]model.Item, error) {
	var ents []E
	if err := json.Unmarshal(data, &ents); err != nil {
		return nil, err
	}
	out := make([]model.Item, 0, len(ents))
	for _, e := range ents {
		out = append(out, e.ToModel())
	}
	return out, nil
}
