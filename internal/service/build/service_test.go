package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/internal/service/mocks"
	"github.com/you-humble/pc-builder/platform/logger"
)

func part(id string, price float64, inStock bool) model.Part {
	status := model.StockInStock
	if !inStock {
		status = model.StockOutOfStock
	}
	return model.Part{ID: id, Brand: gofakeit.Company(), Price: price, Stock: model.Stock{Status: status, Quantity: 1}}
}

type fixture struct {
	board    *model.Motherboard
	zen4     *model.Processor
	zen3     *model.Processor
	zen5Gone *model.Processor
	nvme     *model.StorageDevice
	mouse    *model.Mouse
	catalog  *model.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		board: &model.Motherboard{
			Part:       part("mb-am5", 8499, true),
			FormFactor: "ATX",
			CPUSupport: model.CPUSupport{Vendor: "AMD", Socket: "AM5", Generations: []string{"Zen4", "Zen5"}},
			Storage:    model.BoardStorage{SATAPorts: 4, M2Slots: 0},
		},
		zen4:     &model.Processor{Part: part("cpu-zen4", 15999, true), Vendor: "AMD", Socket: "AM5", Generation: "Zen4", TDPW: 120},
		zen3:     &model.Processor{Part: part("cpu-zen3", 4299, true), Vendor: "AMD", Socket: "AM4", Generation: "Zen3", TDPW: 65},
		zen5Gone: &model.Processor{Part: part("cpu-zen5", 27999, false), Vendor: "AMD", Socket: "AM5", Generation: "Zen5", TDPW: 170},
		nvme:     &model.StorageDevice{Part: part("ssd-nvme", 4299, true), Interface: model.StorageInterface{Type: model.InterfaceM2NVMe}},
		mouse:    &model.Mouse{Part: part("mouse-1", 1299, true)},
	}

	cat, err := model.NewCatalog(map[model.Category][]model.Item{
		model.CategoryMotherboard: {f.board},
		model.CategoryCPU:         {f.zen4, f.zen3, f.zen5Gone},
		model.CategoryStorage:     {f.nvme},
		model.CategoryMouse:       {f.mouse},
	})
	require.NoError(t, err)
	f.catalog = cat

	return f
}

type deps struct {
	repository *mocks.MockBuildRepository
	catalog    *mocks.MockCatalogProvider
	sender     *mocks.MockCheckoutSender
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockBuildRepository(t),
		catalog:    mocks.NewMockCatalogProvider(t),
		sender:     mocks.NewMockCheckoutSender(t),
	}
}

func newSvc(d deps) *service {
	return NewBuildService(d.repository, d.catalog, d.sender, time.Second, time.Second)
}

// seeded returns a service whose cache already holds build id with the given selection.
func seeded(t *testing.T, d deps, rec model.BuildRecord) *service {
	t.Helper()

	d.repository.On("BuildByID", mock.Anything, rec.ID).Return(rec, nil).Once()
	svc := newSvc(d)
	_, err := svc.Build(context.Background(), rec.ID)
	require.NoError(t, err)

	return svc
}

func TestServiceBuild_Create(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)
	id := uuid.New()
	now := time.Now()

	d := newDeps(t)
	d.catalog.On("Snapshot").Return(f.catalog, nil)
	d.repository.On("Create", mock.Anything, model.BuildRecord{}).
		Return(model.BuildRecord{ID: id, CreatedAt: now, UpdatedAt: now}, nil).Once()

	svc := newSvc(d)
	b, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, 0, b.Selection.Count())

	got, err := svc.Build(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	d.repository.AssertNotCalled(t, "BuildByID", mock.Anything, mock.Anything)
}

func TestServiceBuild_Create_CatalogNotLoaded(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	d := newDeps(t)
	d.catalog.On("Snapshot").Return((*model.Catalog)(nil), model.ErrCatalogNotLoaded).Once()

	_, err := newSvc(d).Create(context.Background())
	assert.ErrorIs(t, err, model.ErrCatalogNotLoaded)
	d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceBuild_Select(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)

	type testCase struct {
		name     string
		category model.Category
		partID   string
		setup    func(d deps)
		assert   func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps)
	}

	tests := []testCase{
		{
			name:     "success: compatible cpu",
			category: model.CategoryCPU,
			partID:   f.zen4.ID,
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, mock.MatchedBy(func(rec model.BuildRecord) bool {
					return rec.Selection["cpu"] == f.zen4.ID && rec.Selection["motherboard"] == f.board.ID
				})).Return(nil).Once()
			},
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				require.NoError(t, err)
				assert.Equal(t, f.zen4, b.Selection.CPU)
				assert.Equal(t, 2, b.Selection.Count())
			},
		},
		{
			name:     "incompatible: generation not supported by the board",
			category: model.CategoryCPU,
			partID:   f.zen3.ID,
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrIncompatible)
				d.repository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

				cur, err := svc.Build(context.Background(), id)
				require.NoError(t, err)
				assert.Nil(t, cur.Selection.CPU)
			},
		},
		{
			name:     "out of stock",
			category: model.CategoryCPU,
			partID:   f.zen5Gone.ID,
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				assert.ErrorIs(t, err, model.ErrPartOutOfStock)
			},
		},
		{
			name:     "incompatible: nvme on a board without m.2 slots",
			category: model.CategoryStorage,
			partID:   f.nvme.ID,
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				assert.ErrorIs(t, err, model.ErrIncompatible)
			},
		},
		{
			name:     "category mismatch",
			category: model.CategoryGPU,
			partID:   f.zen4.ID,
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				assert.ErrorIs(t, err, model.ErrCategoryMismatch)
			},
		},
		{
			name:     "part not found",
			category: model.CategoryCPU,
			partID:   gofakeit.UUID(),
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				assert.ErrorIs(t, err, model.ErrPartNotFound)
			},
		},
		{
			name:     "repository error: cache keeps the previous selection",
			category: model.CategoryMouse,
			partID:   f.mouse.ID,
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, mock.Anything).Return(errors.New("pg down")).Once()
			},
			assert: func(t *testing.T, b model.Build, err error, svc *service, id uuid.UUID, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "pg down")

				cur, err := svc.Build(context.Background(), id)
				require.NoError(t, err)
				assert.Nil(t, cur.Selection.Mouse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.catalog.On("Snapshot").Return(f.catalog, nil)
			if tt.setup != nil {
				tt.setup(d)
			}

			id := uuid.New()
			svc := seeded(t, d, model.BuildRecord{ID: id, Selection: map[string]string{"motherboard": f.board.ID}})

			b, err := svc.Select(context.Background(), id, tt.category, tt.partID)
			tt.assert(t, b, err, svc, id, d)
		})
	}
}

func TestServiceBuild_BuildNotFound(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)
	id := uuid.New()

	d := newDeps(t)
	d.catalog.On("Snapshot").Return(f.catalog, nil)
	d.repository.On("BuildByID", mock.Anything, id).Return(model.BuildRecord{}, model.ErrBuildNotFound).Once()

	_, err := newSvc(d).Build(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrBuildNotFound)

	_, err = newSvc(d).Build(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestServiceBuild_RestoreDropsUnknownParts(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)
	id := uuid.New()

	d := newDeps(t)
	d.catalog.On("Snapshot").Return(f.catalog, nil)
	svc := seeded(t, d, model.BuildRecord{
		ID: id,
		Selection: map[string]string{
			"motherboard": f.board.ID,
			"gpu":         "gpu-removed",
			"fan":         "fan-1",
		},
		Cart: []model.CartRecord{
			{Category: "mouse", PartID: f.mouse.ID},
			{Category: "mouse", PartID: "mouse-removed"},
			{Category: "mouse", PartID: f.mouse.ID},
		},
	})

	b, err := svc.Build(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, f.board, b.Selection.Motherboard)
	assert.Equal(t, 1, b.Selection.Count())
	assert.Equal(t, 2, b.Cart.Count())
}

func TestServiceBuild_CatalogReloadRefreshesParts(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)
	id := uuid.New()

	repriced := *f.board
	repriced.Price = 7999
	next, err := model.NewCatalog(map[model.Category][]model.Item{
		model.CategoryMotherboard: {&repriced},
	})
	require.NoError(t, err)

	d := newDeps(t)
	d.catalog.On("Snapshot").Return(f.catalog, nil).Twice()
	d.catalog.On("Snapshot").Return(next, nil)

	svc := seeded(t, d, model.BuildRecord{
		ID:        id,
		Selection: map[string]string{"motherboard": f.board.ID},
		Cart:      []model.CartRecord{{Category: "mouse", PartID: f.mouse.ID}},
	})

	b, err := svc.Build(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 8499, b.Selection.Total(), 0)

	b, err = svc.Build(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 7999, b.Selection.Total(), 0)
	assert.Equal(t, 0, b.Cart.Count(), "mouse is gone from the reloaded catalog")
}

func TestServiceBuild_Candidates(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)
	id := uuid.New()

	d := newDeps(t)
	d.catalog.On("Snapshot").Return(f.catalog, nil)
	svc := seeded(t, d, model.BuildRecord{ID: id, Selection: map[string]string{"motherboard": f.board.ID}})
	ctx := context.Background()

	got, err := svc.Candidates(ctx, id, model.CategoryCPU, model.PartsFilter{IncludeOutOfStock: true})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, model.Candidate{Item: f.zen4, Compatible: true, Disabled: false}, got[0])
	assert.Equal(t, model.Candidate{Item: f.zen3, Compatible: false, Disabled: true}, got[1])
	assert.Equal(t, model.Candidate{Item: f.zen5Gone, Compatible: true, Disabled: true}, got[2])

	got, err = svc.Candidates(ctx, id, model.CategoryCPU, model.PartsFilter{HideIncompatible: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.zen4, got[0].Item)

	got, err = svc.Candidates(ctx, id, model.CategoryMouse, model.PartsFilter{HideIncompatible: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Compatible)

	_, err = svc.Candidates(ctx, id, model.CategoryUnknown, model.PartsFilter{})
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestServiceBuild_ClearAndCart(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)
	id := uuid.New()
	ctx := context.Background()

	d := newDeps(t)
	d.catalog.On("Snapshot").Return(f.catalog, nil)
	d.repository.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := seeded(t, d, model.BuildRecord{
		ID:        id,
		Selection: map[string]string{"motherboard": f.board.ID, "cpu": f.zen4.ID},
	})

	b, err := svc.Clear(ctx, id, model.CategoryCPU)
	require.NoError(t, err)
	assert.Nil(t, b.Selection.CPU)
	assert.NotNil(t, b.Selection.Motherboard)

	b, err = svc.AddToCart(ctx, id, model.CategoryMouse, f.mouse.ID)
	require.NoError(t, err)
	b, err = svc.AddToCart(ctx, id, model.CategoryMouse, f.mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Cart.Count())
	assert.InDelta(t, 2598, b.Cart.Total(), 0)

	_, err = svc.AddToCart(ctx, id, model.CategoryCPU, f.mouse.ID)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)

	b, err = svc.RemoveFromCart(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Cart.Count())

	_, err = svc.RemoveFromCart(ctx, id, 5)
	assert.ErrorIs(t, err, model.ErrCartIndexOutOfRange)

	b, err = svc.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Cart.Count())

	b, err = svc.ClearAll(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Selection.Count())

	_, err = svc.Clear(ctx, id, model.CategoryUnknown)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	s, err := svc.Summary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, s.SelectedCount)
	assert.Equal(t, "₺0", s.TotalText)
}

func TestServiceBuild_Checkout(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	f := newFixture(t)

	type testCase struct {
		name   string
		cart   []model.CartRecord
		setup  func(d deps)
		assert func(t *testing.T, ev model.CartCheckedOut, err error, svc *service, id uuid.UUID, d deps)
	}

	cart := []model.CartRecord{
		{Category: "mouse", PartID: f.mouse.ID},
		{Category: "cpu", PartID: f.zen4.ID},
	}

	tests := []testCase{
		{
			name: "empty cart",
			assert: func(t *testing.T, ev model.CartCheckedOut, err error, svc *service, id uuid.UUID, d deps) {
				assert.ErrorIs(t, err, model.ErrCartEmpty)
				d.repository.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
				d.sender.AssertNotCalled(t, "SendCartCheckedOut", mock.Anything, mock.Anything)
			},
		},
		{
			name: "success: persisted, published and cart cleared",
			cart: cart,
			setup: func(d deps) {
				d.repository.On("Checkout", mock.Anything,
					mock.MatchedBy(func(rec model.BuildRecord) bool { return len(rec.Cart) == 0 }),
					mock.MatchedBy(func(ev model.CartCheckedOut) bool { return len(ev.Items) == 2 }),
				).Return(nil).Once()
				d.sender.On("SendCartCheckedOut", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, ev model.CartCheckedOut, err error, svc *service, id uuid.UUID, d deps) {
				require.NoError(t, err)
				assert.Equal(t, id, ev.BuildID)
				assert.NotEqual(t, uuid.Nil, ev.EventID)
				assert.InDelta(t, 1299+15999, ev.Total, 0)
				assert.Equal(t, model.CategoryMouse, ev.Items[0].Category)
				assert.Equal(t, f.zen4.ID, ev.Items[1].PartID)

				b, err := svc.Build(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, 0, b.Cart.Count())
			},
		},
		{
			name: "repository error: cart kept, nothing published",
			cart: cart,
			setup: func(d deps) {
				d.repository.On("Checkout", mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("tx failed")).Once()
			},
			assert: func(t *testing.T, ev model.CartCheckedOut, err error, svc *service, id uuid.UUID, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "tx failed")
				d.sender.AssertNotCalled(t, "SendCartCheckedOut", mock.Anything, mock.Anything)

				b, err := svc.Build(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, 2, b.Cart.Count())
			},
		},
		{
			name: "send error: checkout already recorded",
			cart: cart,
			setup: func(d deps) {
				d.repository.On("Checkout", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				d.sender.On("SendCartCheckedOut", mock.Anything, mock.Anything).
					Return(errors.New("kafka unavailable")).Once()
			},
			assert: func(t *testing.T, ev model.CartCheckedOut, err error, svc *service, id uuid.UUID, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "kafka unavailable")
				assert.ErrorIs(t, err, model.ErrEventNotPublished)
				assert.Equal(t, id, ev.BuildID)

				b, err := svc.Build(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, 0, b.Cart.Count())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.catalog.On("Snapshot").Return(f.catalog, nil)
			if tt.setup != nil {
				tt.setup(d)
			}

			id := uuid.New()
			svc := seeded(t, d, model.BuildRecord{ID: id, Cart: tt.cart})

			ev, err := svc.Checkout(context.Background(), id)
			tt.assert(t, ev, err, svc, id, d)
		})
	}
}
