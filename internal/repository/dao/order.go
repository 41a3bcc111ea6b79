package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order struct {
	ID            uint        `gorm:"primaryKey"`
	StoreID       uint        `gorm:"not null;index"`
	Store         Store       `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Timestamp     time.Time   `gorm:"not null;index"`
	Total         float64     `gorm:"not null"`
	Discount      float64     `gorm:"not null"`
	StaffUsername string      `gorm:"size:64"`
	Lines         []OrderLine `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// OrderLine copies the item name and price at sale time. There is deliberately
// no foreign key to items.
type OrderLine struct {
	ID       uint    `gorm:"primaryKey"`
	OrderID  uint    `gorm:"not null;index"`
	ItemName string  `gorm:"size:128;not null"`
	Price    float64 `gorm:"not null"`
	Qty      int     `gorm:"not null;check:chk_order_lines_qty,qty > 0"`
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// Insert resolves storeCode and writes the header and every line in one
// transaction. Nothing is persisted when any step fails.
func (d *OrderDAO) Insert(ctx context.Context, storeCode string, order Order) (Order, error) {
	lines := order.Lines
	order.Lines = nil

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store Store
		if err := tx.First(&store, "code = ?", storeCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoreNotFound
			}

			return err
		}

		order.StoreID = store.ID
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].ID = 0
			lines[i].OrderID = order.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		order.Store = store

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	order.Lines = lines
	if order.Lines == nil {
		order.Lines = []OrderLine{}
	}

	return order, nil
}

func (d *OrderDAO) FindByID(ctx context.Context, id uint) (Order, error) {
	var order Order

	result := d.withRelations(ctx).First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

// FindAll returns newest orders first. A zero storeID means every store.
func (d *OrderDAO) FindAll(ctx context.Context, storeID uint) ([]Order, error) {
	var orders []Order

	query := d.withRelations(ctx).Order("id DESC")
	if storeID != 0 {
		query = query.Where("store_id = ?", storeID)
	}

	result := query.Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *OrderDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Order{}).Count(&count)

	return count, result.Error
}

func (d *OrderDAO) withRelations(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Store").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
}
