package service

import (
	"context"
	"fmt"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

type DashboardService struct {
	catalog CatalogRepository
	staff   StaffRepository
	orders  OrderRepository
}

func NewDashboardService(catalog CatalogRepository, staff StaffRepository, orders OrderRepository) *DashboardService {
	return &DashboardService{
		catalog: catalog,
		staff:   staff,
		orders:  orders,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (domain.Summary, error) {
	var (
		summary domain.Summary
		err     error
	)

	if summary.Stores, err = s.catalog.CountStores(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("s.catalog.CountStores -> %w", err)
	}
	if summary.Items, err = s.catalog.CountItems(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("s.catalog.CountItems -> %w", err)
	}
	if summary.Orders, err = s.orders.Count(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("s.orders.Count -> %w", err)
	}
	if summary.Staff, err = s.staff.Count(ctx); err != nil {
		return domain.Summary{}, fmt.Errorf("s.staff.Count -> %w", err)
	}

	return summary, nil
}
