package service

import (
	"context"
	"errors"
	"sync"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

var errBoom = errors.New("boom")

type fakeCatalogRepo struct {
	stores []domain.Store
	items  []domain.Item
	err    error
}

func (f *fakeCatalogRepo) CreateStore(_ context.Context, store domain.Store) (domain.Store, error) {
	if f.err != nil {
		return domain.Store{}, f.err
	}
	for _, s := range f.stores {
		if s.Code == store.Code {
			return domain.Store{}, ErrStoreCodeExists
		}
	}
	store.ID = uint(len(f.stores) + 1)
	f.stores = append(f.stores, store)

	return store, nil
}

func (f *fakeCatalogRepo) FindStores(_ context.Context) ([]domain.Store, error) {
	return f.stores, f.err
}

func (f *fakeCatalogRepo) FindStoreByCode(_ context.Context, code string) (domain.Store, error) {
	if f.err != nil {
		return domain.Store{}, f.err
	}
	for _, s := range f.stores {
		if s.Code == code {
			return s, nil
		}
	}

	return domain.Store{}, ErrStoreNotFound
}

func (f *fakeCatalogRepo) CreateItem(_ context.Context, item domain.Item) (domain.Item, error) {
	for _, i := range f.items {
		if i.StoreID == item.StoreID && i.Code == item.Code {
			return domain.Item{}, ErrItemCodeExists
		}
	}
	item.ID = uint(len(f.items) + 1)
	f.items = append(f.items, item)

	return item, nil
}

func (f *fakeCatalogRepo) FindItemsByStoreID(_ context.Context, storeID uint) ([]domain.Item, error) {
	var items []domain.Item
	for _, i := range f.items {
		if i.StoreID == storeID {
			items = append(items, i)
		}
	}

	return items, nil
}

func (f *fakeCatalogRepo) FindItems(_ context.Context) ([]domain.Item, error) {
	return f.items, f.err
}

func (f *fakeCatalogRepo) CountStores(_ context.Context) (int64, error) {
	return int64(len(f.stores)), f.err
}

func (f *fakeCatalogRepo) CountItems(_ context.Context) (int64, error) {
	return int64(len(f.items)), f.err
}

type fakeStaffRepo struct {
	staff []domain.Staff
}

func (f *fakeStaffRepo) Create(_ context.Context, staff domain.Staff) (domain.Staff, error) {
	for _, s := range f.staff {
		if s.Username == staff.Username {
			return domain.Staff{}, ErrStaffUsernameExists
		}
	}
	staff.ID = uint(len(f.staff) + 1)
	f.staff = append(f.staff, staff)

	return staff, nil
}

func (f *fakeStaffRepo) FindAll(_ context.Context) ([]domain.Staff, error) {
	return f.staff, nil
}

func (f *fakeStaffRepo) FindByUsername(_ context.Context, username string) (domain.Staff, error) {
	for _, s := range f.staff {
		if s.Username == username {
			return s, nil
		}
	}

	return domain.Staff{}, ErrStaffNotFound
}

func (f *fakeStaffRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.staff)), nil
}

// fakeOrderRepo resolves store codes against a fakeCatalogRepo.
type fakeOrderRepo struct {
	catalog *fakeCatalogRepo
	orders  []domain.Order
	err     error
}

func (f *fakeOrderRepo) Create(ctx context.Context, storeCode string, order domain.Order) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}
	store, err := f.catalog.FindStoreByCode(ctx, storeCode)
	if err != nil {
		return domain.Order{}, err
	}

	order.ID = uint(len(f.orders) + 1)
	order.StoreID = store.ID
	order.StoreCode = store.Code
	for i := range order.Lines {
		order.Lines[i].ID = uint(i + 1)
		order.Lines[i].OrderID = order.ID
	}
	f.orders = append(f.orders, order)

	return order, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uint) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}

	return domain.Order{}, ErrOrderNotFound
}

func (f *fakeOrderRepo) FindAll(_ context.Context, storeID uint) ([]domain.Order, error) {
	var orders []domain.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if storeID == 0 || f.orders[i].StoreID == storeID {
			orders = append(orders, f.orders[i])
		}
	}

	return orders, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (p *recordingPublisher) Publish(order domain.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, order)
}

func harrogateCatalog() *fakeCatalogRepo {
	city := "Harrogate"

	return &fakeCatalogRepo{
		stores: []domain.Store{
			{ID: 1, Code: "HRG-001", Name: "Harrogate Superstore", City: &city, Active: true},
			{ID: 2, Code: "LDS-002", Name: "Leeds Express", Active: true},
		},
	}
}
