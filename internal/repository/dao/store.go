package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	ID        uint    `gorm:"primaryKey"`
	Code      string  `gorm:"size:32;uniqueIndex;not null"`
	Name      string  `gorm:"size:128;not null"`
	City      *string `gorm:"size:64"`
	Active    bool    `gorm:"not null"`
	CreatedAt time.Time
}

// Item codes are unique per store only; two stores may sell the same code.
type Item struct {
	ID      uint    `gorm:"primaryKey"`
	StoreID uint    `gorm:"not null;uniqueIndex:idx_items_store_code"`
	Store   Store   `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Code    string  `gorm:"size:64;not null;uniqueIndex:idx_items_store_code"`
	Name    string  `gorm:"size:128;not null"`
	Price   float64 `gorm:"not null;check:chk_items_price,price >= 0"`
	Stock   int     `gorm:"not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) InsertStore(ctx context.Context, store Store) (Store, error) {
	result := d.db.WithContext(ctx).Create(&store)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Store{}, ErrStoreCodeExists
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *CatalogDAO) FindStores(ctx context.Context) ([]Store, error) {
	var stores []Store

	result := d.db.WithContext(ctx).Order("id ASC").Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}

	return stores, nil
}

func (d *CatalogDAO) FindStoreByCode(ctx context.Context, code string) (Store, error) {
	var store Store

	result := d.db.WithContext(ctx).First(&store, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Store{}, ErrStoreNotFound
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *CatalogDAO) InsertItem(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&item)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Item{}, ErrItemCodeExists
		}
		if isForeignKeyViolation(result.Error) {
			return Item{}, ErrStoreNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *CatalogDAO) FindItemsByStoreID(ctx context.Context, storeID uint) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).
		Preload("Store").
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *CatalogDAO) FindItems(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Preload("Store").Order("id ASC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *CatalogDAO) CountStores(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Store{}).Count(&count)

	return count, result.Error
}

func (d *CatalogDAO) CountItems(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Item{}).Count(&count)

	return count, result.Error
}
