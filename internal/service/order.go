package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kleverretail/retail-cloud/internal/config"
	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	ErrUnknownStore  = errors.New("unknown store")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrTotalMismatch = errors.New("total does not match lines minus discount")
)

type OrderRepository interface {
	Create(ctx context.Context, storeCode string, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindAll(ctx context.Context, storeID uint) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
}

type StoreFinder interface {
	FindStoreByCode(ctx context.Context, code string) (domain.Store, error)
}

// OrderPublisher receives every order after it has been committed.
type OrderPublisher interface {
	Publish(order domain.Order)
}

type OrderService struct {
	repo      OrderRepository
	stores    StoreFinder
	conf      *config.OrdersConfig
	publisher OrderPublisher
	now       func() time.Time
}

// NewOrderService builds the order writer. publisher may be nil.
func NewOrderService(repo OrderRepository, stores StoreFinder, conf *config.OrdersConfig, publisher OrderPublisher) *OrderService {
	if conf == nil {
		conf = &config.OrdersConfig{}
	}

	return &OrderService{
		repo:      repo,
		stores:    stores,
		conf:      conf,
		publisher: publisher,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// CreateOrder persists draft as one header plus its lines. The total is stored
// as given unless total verification is switched on.
func (s *OrderService) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Order{}, err
	}

	if s.conf.VerifyTotals && !draft.TotalMatches() {
		expected := draft.Subtotal().Sub(draft.Discount).StringFixed(2)
		return domain.Order{}, fmt.Errorf("%w: expected %s, got %s", ErrTotalMismatch, expected, draft.Total.StringFixed(2))
	}

	lines := make([]domain.OrderLine, len(draft.Lines))
	for i, l := range draft.Lines {
		lines[i] = domain.OrderLine{
			ItemName: l.Name,
			Price:    l.Price.InexactFloat64(),
			Qty:      l.Qty,
		}
	}

	order, err := s.repo.Create(ctx, draft.StoreCode, domain.Order{
		Timestamp:     s.now(),
		Total:         draft.Total.InexactFloat64(),
		Discount:      draft.Discount.InexactFloat64(),
		StaffUsername: draft.StaffUsername,
		Lines:         lines,
	})
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domain.Order{}, fmt.Errorf("%w: %q", ErrUnknownStore, draft.StoreCode)
		}

		return domain.Order{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("order created",
		zap.Uint("order_id", order.ID),
		zap.String("store_code", order.StoreCode),
		zap.Int("lines", len(order.Lines)),
	)

	if s.publisher != nil {
		s.publisher.Publish(order)
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return order, nil
}

// ListOrders returns orders newest first. An empty storeCode lists every store.
func (s *OrderService) ListOrders(ctx context.Context, storeCode string) ([]domain.Order, error) {
	var storeID uint
	if storeCode != "" {
		store, err := s.stores.FindStoreByCode(ctx, storeCode)
		if err != nil {
			return nil, fmt.Errorf("s.stores.FindStoreByCode -> %w", err)
		}
		storeID = store.ID
	}

	orders, err := s.repo.FindAll(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	return orders, nil
}

func validateDraft(draft domain.OrderDraft) error {
	if strings.TrimSpace(draft.StoreCode) == "" {
		return fmt.Errorf("%w: %q", ErrUnknownStore, draft.StoreCode)
	}
	if !domain.AmountInRange(draft.Total) {
		return fmt.Errorf("%w: total must be between 0 and %s", ErrInvalidOrder, domain.MaxAmount)
	}
	if !domain.AmountInRange(draft.Discount) {
		return fmt.Errorf("%w: discount must be between 0 and %s", ErrInvalidOrder, domain.MaxAmount)
	}

	for i, l := range draft.Lines {
		switch {
		case strings.TrimSpace(l.Name) == "":
			return fmt.Errorf("%w: items[%d]: name is required", ErrInvalidOrder, i)
		case !domain.AmountInRange(l.Price):
			return fmt.Errorf("%w: items[%d]: price must be between 0 and %s", ErrInvalidOrder, i, domain.MaxAmount)
		case l.Qty < 1:
			return fmt.Errorf("%w: items[%d]: qty must be a positive integer", ErrInvalidOrder, i)
		}
	}

	return nil
}
