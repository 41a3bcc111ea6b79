package repository

import (
	"context"
	"fmt"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
)

var (
	ErrOrderNotFound = dao.ErrOrderNotFound
)

type OrderDAO interface {
	Insert(ctx context.Context, storeCode string, order dao.Order) (dao.Order, error)
	FindByID(ctx context.Context, id uint) (dao.Order, error)
	FindAll(ctx context.Context, storeID uint) ([]dao.Order, error)
	Count(ctx context.Context) (int64, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

// Create persists order under the store identified by storeCode. The StoreID on
// the input is ignored.
func (r *OrderRepository) Create(ctx context.Context, storeCode string, order domain.Order) (domain.Order, error) {
	created, err := r.dao.Insert(ctx, storeCode, r.domainToDao(order))
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrderRepository) FindAll(ctx context.Context, storeID uint) ([]domain.Order, error) {
	found, err := r.dao.FindAll(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	orders := make([]domain.Order, len(found))
	for i, o := range found {
		orders[i] = r.daoToDomain(o)
	}

	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *OrderRepository) domainToDao(o domain.Order) dao.Order {
	lines := make([]dao.OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = dao.OrderLine{
			ItemName: l.ItemName,
			Price:    l.Price,
			Qty:      l.Qty,
		}
	}

	return dao.Order{
		Timestamp:     o.Timestamp,
		Total:         o.Total,
		Discount:      o.Discount,
		StaffUsername: o.StaffUsername,
		Lines:         lines,
	}
}

func (r *OrderRepository) daoToDomain(o dao.Order) domain.Order {
	lines := make([]domain.OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = domain.OrderLine{
			ID:       l.ID,
			OrderID:  l.OrderID,
			ItemName: l.ItemName,
			Price:    l.Price,
			Qty:      l.Qty,
		}
	}

	return domain.Order{
		ID:            o.ID,
		StoreID:       o.StoreID,
		StoreCode:     o.Store.Code,
		Timestamp:     o.Timestamp,
		Total:         o.Total,
		Discount:      o.Discount,
		StaffUsername: o.StaffUsername,
		Lines:         lines,
	}
}
