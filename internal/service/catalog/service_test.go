package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/internal/service/mocks"
	"github.com/you-humble/pc-builder/platform/logger"
)

var allStock = model.PartsFilter{IncludeOutOfStock: true}

func fakePart(brand string, price float64, inStock bool) model.Part {
	status := model.StockInStock
	if !inStock {
		status = model.StockOutOfStock
	}
	return model.Part{
		ID:    gofakeit.UUID(),
		Brand: brand,
		Model: gofakeit.ProductName(),
		Price: price,
		Stock: model.Stock{Status: status, Quantity: int64(gofakeit.IntRange(0, 50))},
	}
}

func expectEmptyCategories(r *mocks.MockPartRepository, except ...model.Category) {
	skip := make(map[model.Category]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for _, c := range model.Categories {
		if skip[c] {
			continue
		}
		r.On("List", mock.Anything, c, allStock).Return([]model.Item{}, nil).Once()
	}
}

func TestServiceCatalog_Load(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	type deps struct {
		repository *mocks.MockPartRepository
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, svc *service, err error, d deps)
	}

	mice := []model.Item{
		&model.Mouse{Part: fakePart("Logitech", 1299, true)},
		&model.Mouse{Part: fakePart("Razer", 2499, false)},
	}

	tests := []testCase{
		{
			name: "success: all categories loaded",
			setup: func(d deps) {
				expectEmptyCategories(d.repository, model.CategoryMouse)
				d.repository.On("List", mock.Anything, model.CategoryMouse, allStock).Return(mice, nil).Once()
			},
			assert: func(t *testing.T, svc *service, err error, d deps) {
				require.NoError(t, err)
				cat, err := svc.Snapshot()
				require.NoError(t, err)
				assert.Equal(t, mice, cat.Items(model.CategoryMouse))
				assert.Empty(t, cat.Items(model.CategoryGPU))
			},
		},
		{
			name: "repository error: one category fails the load",
			setup: func(d deps) {
				for _, c := range model.Categories {
					if c == model.CategoryGPU {
						d.repository.On("List", mock.Anything, c, allStock).
							Return(nil, errors.New("mongo down")).Maybe()
						continue
					}
					d.repository.On("List", mock.Anything, c, allStock).Return([]model.Item{}, nil).Maybe()
				}
			},
			assert: func(t *testing.T, svc *service, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "mongo down")
				assert.ErrorContains(t, err, "gpu")

				_, err = svc.Snapshot()
				assert.ErrorIs(t, err, model.ErrCatalogNotLoaded)
				assert.False(t, svc.Loaded())
			},
		},
		{
			name: "index error: part listed under the wrong category",
			setup: func(d deps) {
				expectEmptyCategories(d.repository, model.CategoryKeyboard)
				d.repository.On("List", mock.Anything, model.CategoryKeyboard, allStock).Return(mice, nil).Once()
			},
			assert: func(t *testing.T, svc *service, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrCategoryMismatch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockPartRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewCatalogService(d.repository, time.Second)
			err := svc.Load(context.Background())
			tt.assert(t, svc, err, d)
		})
	}
}

func TestServiceCatalog_ReloadSwapsSnapshot(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	repo := mocks.NewMockPartRepository(t)
	first := []model.Item{&model.Monitor{Part: fakePart("LG", 10999, true)}}
	second := []model.Item{&model.Monitor{Part: fakePart("Dell", 4299, true)}}

	expectEmptyCategories(repo, model.CategoryMonitor)
	repo.On("List", mock.Anything, model.CategoryMonitor, allStock).Return(first, nil).Once()
	expectEmptyCategories(repo, model.CategoryMonitor)
	repo.On("List", mock.Anything, model.CategoryMonitor, allStock).Return(second, nil).Once()

	svc := NewCatalogService(repo, time.Second)
	require.NoError(t, svc.Load(context.Background()))
	old, err := svc.Snapshot()
	require.NoError(t, err)

	require.NoError(t, svc.Load(context.Background()))
	cur, err := svc.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, first, old.Items(model.CategoryMonitor), "old snapshot must stay intact")
	assert.Equal(t, second, cur.Items(model.CategoryMonitor))
}

func TestServiceCatalog_Reads(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	inStock := &model.GraphicsCard{Part: fakePart("MSI", 24999, true)}
	cheap := &model.GraphicsCard{Part: fakePart("ASUS", 9999, true)}
	gone := &model.GraphicsCard{Part: fakePart("MSI", 30999, false)}

	repo := mocks.NewMockPartRepository(t)
	expectEmptyCategories(repo, model.CategoryGPU)
	repo.On("List", mock.Anything, model.CategoryGPU, allStock).
		Return([]model.Item{inStock, cheap, gone}, nil).Once()

	svc := NewCatalogService(repo, time.Second)
	ctx := context.Background()

	_, err := svc.Part(ctx, inStock.ID)
	assert.ErrorIs(t, err, model.ErrCatalogNotLoaded)

	require.NoError(t, svc.Load(ctx))
	assert.True(t, svc.Loaded())

	got, err := svc.Part(ctx, "  "+inStock.ID+" ")
	require.NoError(t, err)
	assert.Equal(t, inStock, got)

	_, err = svc.Part(ctx, gofakeit.UUID())
	assert.ErrorIs(t, err, model.ErrPartNotFound)

	_, err = svc.Part(ctx, " ")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	list, err := svc.ListParts(ctx, model.CategoryGPU, model.PartsFilter{Brand: "msi"})
	require.NoError(t, err)
	assert.Equal(t, []model.Item{inStock}, list)

	list, err = svc.ListParts(ctx, model.CategoryGPU, model.PartsFilter{IncludeOutOfStock: true, MinPrice: ptr(10000.0)})
	require.NoError(t, err)
	assert.Equal(t, []model.Item{inStock, gone}, list)

	_, err = svc.ListParts(ctx, model.CategoryUnknown, model.PartsFilter{})
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	brands, err := svc.Brands(ctx, model.CategoryGPU)
	require.NoError(t, err)
	assert.Equal(t, []string{"ASUS", "MSI"}, brands)
}

func ptr[T any](v T) *T { return &v }
