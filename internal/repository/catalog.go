package repository

import (
	"context"
	"fmt"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
)

var (
	ErrStoreNotFound   = dao.ErrStoreNotFound
	ErrStoreCodeExists = dao.ErrStoreCodeExists
	ErrItemCodeExists  = dao.ErrItemCodeExists
)

type CatalogDAO interface {
	InsertStore(ctx context.Context, store dao.Store) (dao.Store, error)
	FindStores(ctx context.Context) ([]dao.Store, error)
	FindStoreByCode(ctx context.Context, code string) (dao.Store, error)
	InsertItem(ctx context.Context, item dao.Item) (dao.Item, error)
	FindItemsByStoreID(ctx context.Context, storeID uint) ([]dao.Item, error)
	FindItems(ctx context.Context) ([]dao.Item, error)
	CountStores(ctx context.Context) (int64, error)
	CountItems(ctx context.Context) (int64, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	created, err := r.dao.InsertStore(ctx, dao.Store{
		Code:   store.Code,
		Name:   store.Name,
		City:   store.City,
		Active: store.Active,
	})
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.InsertStore -> %w", err)
	}

	return r.storeDaoToDomain(created), nil
}

func (r *CatalogRepository) FindStores(ctx context.Context) ([]domain.Store, error) {
	found, err := r.dao.FindStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStores -> %w", err)
	}

	stores := make([]domain.Store, len(found))
	for i, s := range found {
		stores[i] = r.storeDaoToDomain(s)
	}

	return stores, nil
}

func (r *CatalogRepository) FindStoreByCode(ctx context.Context, code string) (domain.Store, error) {
	found, err := r.dao.FindStoreByCode(ctx, code)
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.FindStoreByCode -> %w", err)
	}

	return r.storeDaoToDomain(found), nil
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.InsertItem(ctx, dao.Item{
		StoreID: item.StoreID,
		Code:    item.Code,
		Name:    item.Name,
		Price:   item.Price,
		Stock:   item.Stock,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	result := r.itemDaoToDomain(created)
	result.StoreCode = item.StoreCode

	return result, nil
}

func (r *CatalogRepository) FindItemsByStoreID(ctx context.Context, storeID uint) ([]domain.Item, error) {
	found, err := r.dao.FindItemsByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindItemsByStoreID -> %w", err)
	}

	return r.itemsDaoToDomain(found), nil
}

func (r *CatalogRepository) FindItems(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindItems -> %w", err)
	}

	return r.itemsDaoToDomain(found), nil
}

func (r *CatalogRepository) CountStores(ctx context.Context) (int64, error) {
	count, err := r.dao.CountStores(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountStores -> %w", err)
	}

	return count, nil
}

func (r *CatalogRepository) CountItems(ctx context.Context) (int64, error) {
	count, err := r.dao.CountItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountItems -> %w", err)
	}

	return count, nil
}

func (r *CatalogRepository) storeDaoToDomain(s dao.Store) domain.Store {
	return domain.Store{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		City:      s.City,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}

func (r *CatalogRepository) itemDaoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:        i.ID,
		StoreID:   i.StoreID,
		StoreCode: i.Store.Code,
		Code:      i.Code,
		Name:      i.Name,
		Price:     i.Price,
		Stock:     i.Stock,
	}
}

func (r *CatalogRepository) itemsDaoToDomain(found []dao.Item) []domain.Item {
	items := make([]domain.Item, len(found))
	for i, item := range found {
		items[i] = r.itemDaoToDomain(item)
	}

	return items
}
