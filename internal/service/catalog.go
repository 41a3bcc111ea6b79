package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository"
)

var (
	ErrStoreNotFound   = repository.ErrStoreNotFound
	ErrStoreCodeExists = repository.ErrStoreCodeExists
	ErrItemCodeExists  = repository.ErrItemCodeExists
	ErrInvalidItem     = errors.New("invalid item")
)

type CatalogRepository interface {
	CreateStore(ctx context.Context, store domain.Store) (domain.Store, error)
	FindStores(ctx context.Context) ([]domain.Store, error)
	FindStoreByCode(ctx context.Context, code string) (domain.Store, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	FindItemsByStoreID(ctx context.Context, storeID uint) ([]domain.Item, error)
	FindItems(ctx context.Context) ([]domain.Item, error)
	CountStores(ctx context.Context) (int64, error)
	CountItems(ctx context.Context) (int64, error)
}

// CatalogService is the read side used by the POS client plus the two
// back-office writes that maintain the catalog.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.repo.FindStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindStores -> %w", err)
	}

	return stores, nil
}

func (s *CatalogService) GetStore(ctx context.Context, code string) (domain.Store, error) {
	store, err := s.repo.FindStoreByCode(ctx, code)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.FindStoreByCode -> %w", err)
	}

	return store, nil
}

// CreateStore inserts an active store. A taken code yields ErrStoreCodeExists.
func (s *CatalogService) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	store.Active = true

	created, err := s.repo.CreateStore(ctx, store)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.CreateStore -> %w", err)
	}

	return created, nil
}

// ListItems returns the items of the store identified by code, or
// ErrStoreNotFound. A store without items yields an empty, non-nil slice.
func (s *CatalogService) ListItems(ctx context.Context, code string) ([]domain.Item, error) {
	store, err := s.repo.FindStoreByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindStoreByCode -> %w", err)
	}

	items, err := s.repo.FindItemsByStoreID(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindItemsByStoreID -> %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}

	return items, nil
}

func (s *CatalogService) ListAllItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindItems -> %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}

	return items, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, storeCode string, item domain.Item) (domain.Item, error) {
	if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || !domain.AmountInRange(decimal.NewFromFloat(item.Price)) {
		return domain.Item{}, fmt.Errorf("%w: price must be between 0 and %s", ErrInvalidItem, domain.MaxAmount)
	}
	if item.Stock < 0 {
		return domain.Item{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidItem)
	}

	store, err := s.repo.FindStoreByCode(ctx, storeCode)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindStoreByCode -> %w", err)
	}

	item.StoreID = store.ID
	item.StoreCode = store.Code

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
	}

	return created, nil
}
