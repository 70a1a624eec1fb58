package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/logger"
)

type PartRepository interface {
	List(ctx context.Context, c model.Category, filter model.PartsFilter) ([]model.Item, error)
}

type service struct {
	repo          PartRepository
	readDBTimeout time.Duration

	loadMu   sync.Mutex
	snapshot atomic.Pointer[model.Catalog]
}

func NewCatalogService(repo PartRepository, readDBTimeout time.Duration) *service {
	return &service{repo: repo, readDBTimeout: readDBTimeout}
}

// Load reads all categories concurrently and swaps in the new snapshot.
// A failing category fails the whole load and keeps the previous snapshot.
func (s *service) Load(ctx context.Context) error {
	const op = "catalog.service.Load"

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	parts := make([][]model.Item, len(model.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range model.Categories {
		g.Go(func() error {
			items, err := s.repo.List(gctx, c, model.PartsFilter{IncludeOutOfStock: true})
			if err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
			parts[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "load catalog", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	byCategory := make(map[model.Category][]model.Item, len(model.Categories))
	for i, c := range model.Categories {
		byCategory[c] = parts[i]
	}

	cat, err := model.NewCatalog(byCategory)
	if err != nil {
		logger.Error(ctx, "index catalog", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.snapshot.Store(cat)

	fields := make([]logger.Field, 0, len(model.Categories))
	for c, n := range cat.Len() {
		fields = append(fields, logger.Int(c.String(), n))
	}
	logger.Info(ctx, "catalog loaded", fields...)

	return nil
}

// Snapshot returns the current catalog. Callers evaluate a whole batch against one snapshot.
func (s *service) Snapshot() (*model.Catalog, error) {
	cat := s.snapshot.Load()
	if cat == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	return cat, nil
}

func (s *service) Loaded() bool {
	return s.snapshot.Load() != nil
}

func (s *service) Part(ctx context.Context, partID string) (model.Item, error) {
	const op = "catalog.service.Part"
	log := logger.With(
		logger.String("part_id", partID),
	)

	partID = strings.TrimSpace(partID)
	if partID == "" {
		log.Error(ctx, "validation: empty part id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("part id must be non-empty"))
	}

	cat, err := s.Snapshot()
	if err != nil {
		log.Error(ctx, "catalog snapshot", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	it, ok := cat.PartByID(partID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	return it, nil
}

// ListParts returns the parts of category c that pass the brand, price and stock criteria.
func (s *service) ListParts(ctx context.Context, c model.Category, filter model.PartsFilter) ([]model.Item, error) {
	const op = "catalog.service.ListParts"
	log := logger.With(
		logger.String("category", c.String()),
	)

	if !c.Valid() {
		log.Error(ctx, "validation: unknown category")
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownCategory)
	}

	cat, err := s.Snapshot()
	if err != nil {
		log.Error(ctx, "catalog snapshot", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]model.Item, 0)
	for _, it := range cat.Items(c) {
		if filter.Match(it.Base()) {
			out = append(out, it)
		}
	}

	return out, nil
}

func (s *service) Brands(ctx context.Context, c model.Category) ([]string, error) {
	const op = "catalog.service.Brands"

	if !c.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownCategory)
	}

	cat, err := s.Snapshot()
	if err != nil {
		logger.Error(ctx, "catalog snapshot", logger.String("category", c.String()), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cat.Brands(c), nil
}
