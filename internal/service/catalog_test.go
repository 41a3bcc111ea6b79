package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

func TestCatalogService_ListStores(t *testing.T) {
	svc := NewCatalogService(harrogateCatalog())

	stores, err := svc.ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "HRG-001", stores[0].Code)
	assert.Equal(t, "LDS-002", stores[1].Code)
}

func TestCatalogService_ListItems(t *testing.T) {
	repo := harrogateCatalog()
	repo.items = []domain.Item{
		{ID: 1, StoreID: 1, Code: "W1", Name: "Widget", Price: 10, Stock: 5},
		{ID: 2, StoreID: 1, Code: "G1", Name: "Gadget", Price: 3.5},
	}
	svc := NewCatalogService(repo)
	ctx := context.Background()

	t.Run("known store", func(t *testing.T) {
		items, err := svc.ListItems(ctx, "HRG-001")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "W1", items[0].Code)
		assert.Equal(t, "G1", items[1].Code)
	})

	t.Run("store without items is empty, not missing", func(t *testing.T) {
		items, err := svc.ListItems(ctx, "LDS-002")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("unknown store", func(t *testing.T) {
		_, err := svc.ListItems(ctx, "NOPE")
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestCatalogService_CreateStore(t *testing.T) {
	svc := NewCatalogService(harrogateCatalog())
	ctx := context.Background()

	created, err := svc.CreateStore(ctx, domain.Store{Code: "YRK-003", Name: "York"})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.NotZero(t, created.ID)

	_, err = svc.CreateStore(ctx, domain.Store{Code: "YRK-003", Name: "York again"})
	assert.ErrorIs(t, err, ErrStoreCodeExists)
}

func TestCatalogService_CreateItem(t *testing.T) {
	svc := NewCatalogService(harrogateCatalog())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, "LDS-002", domain.Item{Code: "W1", Name: "Widget", Price: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, item.StoreID)
	assert.Equal(t, "LDS-002", item.StoreCode)

	_, err = svc.CreateItem(ctx, "LDS-002", domain.Item{Code: "W1", Name: "Widget"})
	assert.ErrorIs(t, err, ErrItemCodeExists)

	_, err = svc.CreateItem(ctx, "HRG-001", domain.Item{Code: "W1", Name: "Widget"})
	assert.NoError(t, err, "item codes are unique per store only")

	_, err = svc.CreateItem(ctx, "NOPE", domain.Item{Code: "W1", Name: "Widget"})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestCatalogService_CreateItem_InvalidPrice(t *testing.T) {
	repo := harrogateCatalog()
	svc := NewCatalogService(repo)
	ctx := context.Background()

	for _, price := range []float64{math.Inf(1), math.NaN(), -1, 1e13} {
		_, err := svc.CreateItem(ctx, "HRG-001", domain.Item{Code: "W1", Name: "Widget", Price: price})
		assert.ErrorIs(t, err, ErrInvalidItem, price)
	}

	_, err := svc.CreateItem(ctx, "HRG-001", domain.Item{Code: "W1", Name: "Widget", Price: 1, Stock: -1})
	assert.ErrorIs(t, err, ErrInvalidItem)

	items, err := svc.ListItems(ctx, "HRG-001")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_RepositoryErrorIsWrapped(t *testing.T) {
	repo := harrogateCatalog()
	repo.err = errBoom
	svc := NewCatalogService(repo)

	_, err := svc.ListStores(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "s.repo.FindStores")
}
