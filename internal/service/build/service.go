package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/pc-builder/internal/compat"
	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/logger"
)

type BuildRepository interface {
	Create(ctx context.Context, rec model.BuildRecord) (model.BuildRecord, error)
	BuildByID(ctx context.Context, id uuid.UUID) (model.BuildRecord, error)
	Update(ctx context.Context, rec model.BuildRecord) error
	Checkout(ctx context.Context, rec model.BuildRecord, ev model.CartCheckedOut) error
}

type CatalogProvider interface {
	Snapshot() (*model.Catalog, error)
}

type CheckoutSender interface {
	SendCartCheckedOut(ctx context.Context, ev model.CartCheckedOut) error
}

// entry caches one build together with the catalog snapshot its parts were resolved against.
type entry struct {
	mu      sync.Mutex
	build   model.Build
	catalog *model.Catalog
}

type service struct {
	repo           BuildRepository
	catalog        CatalogProvider
	sender         CheckoutSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time

	mu     sync.Mutex
	builds map[uuid.UUID]*entry
}

func NewBuildService(
	repo BuildRepository,
	catalog CatalogProvider,
	sender CheckoutSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		catalog:        catalog,
		sender:         sender,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
		builds:         make(map[uuid.UUID]*entry),
	}
}

func (svc *service) Create(ctx context.Context) (model.Build, error) {
	const op = "build.service.Create"

	cat, err := svc.catalog.Snapshot()
	if err != nil {
		logger.Error(ctx, "catalog snapshot", logger.ErrorF(err))
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	rec, err := svc.repo.Create(ctx, model.BuildRecord{})
	if err != nil {
		logger.Error(ctx, "repository create build", logger.ErrorF(err))
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	b := model.Build{ID: rec.ID, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}

	svc.mu.Lock()
	svc.builds[b.ID] = &entry{build: b, catalog: cat}
	svc.mu.Unlock()

	logger.Info(ctx, "build created", logger.String("build_id", b.ID.String()))

	return b, nil
}

func (svc *service) Build(ctx context.Context, id uuid.UUID) (model.Build, error) {
	const op = "build.service.Build"

	e, cat, err := svc.entry(ctx, id)
	if err != nil {
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	svc.refresh(ctx, e, cat)

	return e.build, nil
}

func (svc *service) Summary(ctx context.Context, id uuid.UUID) (model.BuildSummary, error) {
	const op = "build.service.Summary"

	b, err := svc.Build(ctx, id)
	if err != nil {
		return model.BuildSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	return b.Summarize(), nil
}

// Select puts the part into its category slot. The part must be in stock and
// compatible with the current selection; otherwise the build is left unchanged.
func (svc *service) Select(ctx context.Context, id uuid.UUID, c model.Category, partID string) (model.Build, error) {
	const op = "build.service.Select"
	log := logger.With(
		logger.String("build_id", id.String()),
		logger.String("category", c.String()),
		logger.String("part_id", partID),
	)

	b, err := svc.mutate(ctx, id, func(b model.Build, cat *model.Catalog) (model.Build, error) {
		item, err := lookup(cat, c, partID)
		if err != nil {
			return b, err
		}
		if !item.Base().InStock() {
			return b, model.ErrPartOutOfStock
		}
		if !compat.Compatible(b.Selection, item) {
			return b, model.ErrIncompatible
		}
		b.Selection, err = b.Selection.With(item)
		return b, err
	})
	if err != nil {
		log.Warn(ctx, "select part", logger.ErrorF(err))
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) Clear(ctx context.Context, id uuid.UUID, c model.Category) (model.Build, error) {
	const op = "build.service.Clear"

	if !c.Valid() {
		return model.Build{}, fmt.Errorf("%s: %w", op, model.ErrUnknownCategory)
	}

	b, err := svc.mutate(ctx, id, func(b model.Build, _ *model.Catalog) (model.Build, error) {
		b.Selection = b.Selection.Without(c)
		return b, nil
	})
	if err != nil {
		logger.Error(ctx, "clear category", logger.String("build_id", id.String()), logger.ErrorF(err))
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) ClearAll(ctx context.Context, id uuid.UUID) (model.Build, error) {
	const op = "build.service.ClearAll"

	b, err := svc.mutate(ctx, id, func(b model.Build, _ *model.Catalog) (model.Build, error) {
		b.Selection = model.Selection{}
		return b, nil
	})
	if err != nil {
		logger.Error(ctx, "clear selection", logger.String("build_id", id.String()), logger.ErrorF(err))
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// Candidates lists the parts of category c that the picker shows for the build.
// Every candidate is evaluated against the same selection snapshot.
func (svc *service) Candidates(
	ctx context.Context,
	id uuid.UUID,
	c model.Category,
	filter model.PartsFilter,
) ([]model.Candidate, error) {
	const op = "build.service.Candidates"

	if !c.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownCategory)
	}

	e, cat, err := svc.entry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	e.mu.Lock()
	svc.refresh(ctx, e, cat)
	sel := e.build.Selection
	e.mu.Unlock()

	out := make([]model.Candidate, 0)
	for _, it := range cat.Items(c) {
		p := it.Base()
		if !filter.Match(p) {
			continue
		}
		ok := compat.Compatible(sel, it)
		if filter.HideIncompatible && !ok {
			continue
		}
		out = append(out, model.Candidate{
			Item:       it,
			Compatible: ok,
			Disabled:   !p.InStock() || !ok,
		})
	}

	return out, nil
}

func (svc *service) AddToCart(ctx context.Context, id uuid.UUID, c model.Category, partID string) (model.Build, error) {
	const op = "build.service.AddToCart"

	b, err := svc.mutate(ctx, id, func(b model.Build, cat *model.Catalog) (model.Build, error) {
		item, err := lookup(cat, c, partID)
		if err != nil {
			return b, err
		}
		b.Cart = b.Cart.Add(item)
		return b, nil
	})
	if err != nil {
		logger.Warn(ctx, "add to cart",
			logger.String("build_id", id.String()),
			logger.String("part_id", partID),
			logger.ErrorF(err),
		)
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) RemoveFromCart(ctx context.Context, id uuid.UUID, index int) (model.Build, error) {
	const op = "build.service.RemoveFromCart"

	b, err := svc.mutate(ctx, id, func(b model.Build, _ *model.Catalog) (model.Build, error) {
		cart, err := b.Cart.Remove(index)
		if err != nil {
			return b, err
		}
		b.Cart = cart
		return b, nil
	})
	if err != nil {
		logger.Warn(ctx, "remove from cart",
			logger.String("build_id", id.String()),
			logger.Int("index", index),
			logger.ErrorF(err),
		)
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) ClearCart(ctx context.Context, id uuid.UUID) (model.Build, error) {
	const op = "build.service.ClearCart"

	b, err := svc.mutate(ctx, id, func(b model.Build, _ *model.Catalog) (model.Build, error) {
		b.Cart = nil
		return b, nil
	})
	if err != nil {
		logger.Error(ctx, "clear cart", logger.String("build_id", id.String()), logger.ErrorF(err))
		return model.Build{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// Checkout records the cart, empties it and publishes a checkout event.
func (svc *service) Checkout(ctx context.Context, id uuid.UUID) (model.CartCheckedOut, error) {
	const op = "build.service.Checkout"
	log := logger.With(
		logger.String("build_id", id.String()),
	)

	e, cat, err := svc.entry(ctx, id)
	if err != nil {
		return model.CartCheckedOut{}, fmt.Errorf("%s: %w", op, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	svc.refresh(ctx, e, cat)

	b := e.build
	if b.Cart.Count() == 0 {
		log.Warn(ctx, "checkout of empty cart")
		return model.CartCheckedOut{}, fmt.Errorf("%s: %w", op, model.ErrCartEmpty)
	}

	ev := model.CartCheckedOut{
		EventID:    uuid.New(),
		BuildID:    b.ID,
		Total:      b.Cart.Total(),
		OccurredAt: svc.now().UTC(),
	}
	for _, ci := range b.Cart {
		p := ci.Item.Base()
		ev.Items = append(ev.Items, model.CheckedOutItem{
			Category: ci.Category,
			PartID:   p.ID,
			Name:     p.DisplayName(),
			Price:    p.Price,
		})
	}

	next := b
	next.Cart = nil
	next.UpdatedAt = ev.OccurredAt

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Checkout(wctx, next.Record(), ev); err != nil {
		log.Error(ctx, "repository checkout", logger.ErrorF(err))
		return model.CartCheckedOut{}, fmt.Errorf("%s: %w", op, err)
	}
	e.build = next

	if err := svc.sender.SendCartCheckedOut(ctx, ev); err != nil {
		log.Error(ctx, "send cart checked out", logger.String("event_id", ev.EventID.String()), logger.ErrorF(err))
		return ev, fmt.Errorf("%s: %w", op, errors.Join(model.ErrEventNotPublished, err))
	}

	log.Info(ctx, "cart checked out",
		logger.String("event_id", ev.EventID.String()),
		logger.Int("items", len(ev.Items)),
		logger.Float64("total", ev.Total),
	)

	return ev, nil
}

// mutate applies fn to the cached build and persists the result before
// publishing it to the cache. On any error the cached build is unchanged.
func (svc *service) mutate(
	ctx context.Context,
	id uuid.UUID,
	fn func(b model.Build, cat *model.Catalog) (model.Build, error),
) (model.Build, error) {
	e, cat, err := svc.entry(ctx, id)
	if err != nil {
		return model.Build{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	svc.refresh(ctx, e, cat)

	next, err := fn(e.build, cat)
	if err != nil {
		return model.Build{}, err
	}
	next.UpdatedAt = svc.now().UTC()

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Update(ctx, next.Record()); err != nil {
		return model.Build{}, err
	}
	e.build = next

	return next, nil
}

// entry returns the cached build, loading it from the repository on a miss.
func (svc *service) entry(ctx context.Context, id uuid.UUID) (*entry, *model.Catalog, error) {
	if id == uuid.Nil {
		return nil, nil, errors.Join(model.ErrInvalidArgument, errors.New("build id must be non-empty"))
	}

	cat, err := svc.catalog.Snapshot()
	if err != nil {
		return nil, nil, err
	}

	svc.mu.Lock()
	e, ok := svc.builds[id]
	svc.mu.Unlock()
	if ok {
		return e, cat, nil
	}

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	rec, err := svc.repo.BuildByID(rctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrBuildNotFound) {
			logger.Error(ctx, "repository build by id", logger.String("build_id", id.String()), logger.ErrorF(err))
		}
		return nil, nil, err
	}

	loaded := &entry{build: resolve(ctx, rec, cat), catalog: cat}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if e, ok := svc.builds[id]; ok {
		return e, cat, nil
	}
	svc.builds[id] = loaded

	return loaded, cat, nil
}

// refresh re-resolves the build against cat when the catalog was reloaded. Caller holds e.mu.
func (svc *service) refresh(ctx context.Context, e *entry, cat *model.Catalog) {
	if e.catalog == cat {
		return
	}
	e.build = resolve(ctx, e.build.Record(), cat)
	e.catalog = cat
}

// resolve turns a persisted build back into catalog items. Parts that are no
// longer in the catalog are dropped.
func resolve(ctx context.Context, rec model.BuildRecord, cat *model.Catalog) model.Build {
	b := model.Build{ID: rec.ID, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}

	for key, partID := range rec.Selection {
		c, err := model.ParseCategory(key)
		if err != nil {
			logger.Warn(ctx, "drop selection entry", logger.String("category", key), logger.ErrorF(err))
			continue
		}
		item, err := lookup(cat, c, partID)
		if err != nil {
			logger.Warn(ctx, "drop selection entry", logger.String("part_id", partID), logger.ErrorF(err))
			continue
		}
		if sel, err := b.Selection.With(item); err == nil {
			b.Selection = sel
		}
	}

	for _, cr := range rec.Cart {
		c, err := model.ParseCategory(cr.Category)
		if err != nil {
			logger.Warn(ctx, "drop cart entry", logger.String("category", cr.Category), logger.ErrorF(err))
			continue
		}
		item, err := lookup(cat, c, cr.PartID)
		if err != nil {
			logger.Warn(ctx, "drop cart entry", logger.String("part_id", cr.PartID), logger.ErrorF(err))
			continue
		}
		b.Cart = b.Cart.Add(item)
	}

	return b
}

func lookup(cat *model.Catalog, c model.Category, partID string) (model.Item, error) {
	if !c.Valid() {
		return nil, model.ErrUnknownCategory
	}
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("part id must be non-empty"))
	}
	item, ok := cat.PartByID(partID)
	if !ok {
		return nil, model.ErrPartNotFound
	}
	if item.Category() != c {
		return nil, fmt.Errorf("%w: %q is %s", model.ErrCategoryMismatch, partID, item.Category())
	}
	return item, nil
}
