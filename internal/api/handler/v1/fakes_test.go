package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/service"
)

var errBoom = errors.New("boom")

type fakeCatalogService struct {
	stores []domain.Store
	items  map[string][]domain.Item
	err    error
}

func (f *fakeCatalogService) ListStores(_ context.Context) ([]domain.Store, error) {
	return f.stores, f.err
}

func (f *fakeCatalogService) GetStore(_ context.Context, code string) (domain.Store, error) {
	if f.err != nil {
		return domain.Store{}, f.err
	}
	for _, s := range f.stores {
		if s.Code == code {
			return s, nil
		}
	}

	return domain.Store{}, service.ErrStoreNotFound
}

func (f *fakeCatalogService) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	if _, err := f.GetStore(ctx, store.Code); err == nil {
		return domain.Store{}, service.ErrStoreCodeExists
	}
	store.ID = uint(len(f.stores) + 1)
	store.Active = true
	f.stores = append(f.stores, store)

	return store, nil
}

func (f *fakeCatalogService) ListItems(ctx context.Context, code string) ([]domain.Item, error) {
	if _, err := f.GetStore(ctx, code); err != nil {
		return nil, err
	}
	items := f.items[code]
	if items == nil {
		items = []domain.Item{}
	}

	return items, nil
}

func (f *fakeCatalogService) ListAllItems(_ context.Context) ([]domain.Item, error) {
	all := []domain.Item{}
	for _, s := range f.stores {
		all = append(all, f.items[s.Code]...)
	}

	return all, f.err
}

func (f *fakeCatalogService) CreateItem(ctx context.Context, storeCode string, item domain.Item) (domain.Item, error) {
	store, err := f.GetStore(ctx, storeCode)
	if err != nil {
		return domain.Item{}, err
	}
	for _, i := range f.items[storeCode] {
		if i.Code == item.Code {
			return domain.Item{}, service.ErrItemCodeExists
		}
	}
	if f.items == nil {
		f.items = map[string][]domain.Item{}
	}
	item.ID = 100
	item.StoreID = store.ID
	item.StoreCode = store.Code
	f.items[storeCode] = append(f.items[storeCode], item)

	return item, nil
}

type fakeOrderService struct {
	catalog *fakeCatalogService
	orders  []domain.Order
	drafts  []domain.OrderDraft
	err     error
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	f.drafts = append(f.drafts, draft)
	if f.err != nil {
		return domain.Order{}, f.err
	}
	store, err := f.catalog.GetStore(ctx, draft.StoreCode)
	if err != nil {
		return domain.Order{}, service.ErrUnknownStore
	}

	order := domain.Order{
		ID:            uint(len(f.orders) + 1),
		StoreID:       store.ID,
		StoreCode:     store.Code,
		Total:         draft.Total.InexactFloat64(),
		Discount:      draft.Discount.InexactFloat64(),
		StaffUsername: draft.StaffUsername,
		Lines:         []domain.OrderLine{},
	}
	for i, l := range draft.Lines {
		order.Lines = append(order.Lines, domain.OrderLine{
			ID:       uint(i + 1),
			OrderID:  order.ID,
			ItemName: l.Name,
			Price:    l.Price.InexactFloat64(),
			Qty:      l.Qty,
		})
	}
	f.orders = append(f.orders, order)

	return order, nil
}

func (f *fakeOrderService) GetOrder(_ context.Context, id uint) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}

	return domain.Order{}, service.ErrOrderNotFound
}

func (f *fakeOrderService) ListOrders(ctx context.Context, storeCode string) ([]domain.Order, error) {
	if storeCode != "" {
		if _, err := f.catalog.GetStore(ctx, storeCode); err != nil {
			return nil, err
		}
	}
	orders := []domain.Order{}
	for i := len(f.orders) - 1; i >= 0; i-- {
		if storeCode == "" || f.orders[i].StoreCode == storeCode {
			orders = append(orders, f.orders[i])
		}
	}

	return orders, nil
}

type fakeStaffService struct {
	staff []domain.Staff
}

func (f *fakeStaffService) ListStaff(_ context.Context) ([]domain.Staff, error) {
	return f.staff, nil
}

func (f *fakeStaffService) GetStaff(_ context.Context, username string) (domain.Staff, error) {
	for _, s := range f.staff {
		if s.Username == username {
			return s, nil
		}
	}

	return domain.Staff{}, service.ErrStaffNotFound
}

func (f *fakeStaffService) CreateStaff(_ context.Context, staff domain.Staff) (domain.Staff, error) {
	for _, s := range f.staff {
		if s.Username == staff.Username {
			return domain.Staff{}, service.ErrStaffUsernameExists
		}
	}
	if staff.Role == "" {
		staff.Role = domain.DefaultStaffRole
	}
	staff.ID = uint(len(f.staff) + 1)
	staff.Active = true
	f.staff = append(f.staff, staff)

	return staff, nil
}

type fakeDashboardService struct {
	summary domain.Summary
	err     error
}

func (f *fakeDashboardService) Summary(_ context.Context) (domain.Summary, error) {
	return f.summary, f.err
}

func harrogate() *fakeCatalogService {
	city := "Harrogate"

	return &fakeCatalogService{
		stores: []domain.Store{
			{ID: 1, Code: "HRG-001", Name: "Harrogate Superstore", City: &city, Active: true},
		},
		items: map[string][]domain.Item{},
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(requestid.New())

	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}
