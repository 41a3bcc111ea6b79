package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

// Numbers accept both JSON numbers and numeric strings, e.g. 10.5 or "10.50".

type OrderLineRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
	Qty   *decimal.Decimal `json:"qty" swaggertype:"integer"`
}

type CreateOrderRequest struct {
	StoreCode     string             `json:"store_code"`
	StaffUsername string             `json:"staff_username"`
	Discount      *decimal.Decimal   `json:"discount" swaggertype:"number"`
	Total         *decimal.Decimal   `json:"total" swaggertype:"number"`
	Items         []OrderLineRequest `json:"items"`
}

func (req *OrderLineRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.By(notBlank), validation.Length(0, 128)),
		validation.Field(&req.Price, validation.NotNil, validation.By(nonNegative), validation.By(withinMaxAmount)),
		validation.Field(&req.Qty, validation.NotNil, validation.By(positiveInteger)),
	)
}

// Validate checks the amounts and lines. The store code is left to the store
// lookup so that any code without a store reads as an unknown store.
func (req *CreateOrderRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StaffUsername, validation.Length(0, 64)),
		validation.Field(&req.Discount, validation.By(nonNegative), validation.By(withinMaxAmount)),
		validation.Field(&req.Total, validation.NotNil, validation.By(nonNegative), validation.By(withinMaxAmount)),
	)
	if err != nil {
		return err
	}

	for i := range req.Items {
		if err := req.Items[i].Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return nil
}

// Draft converts a validated request. Discount defaults to zero.
func (req *CreateOrderRequest) Draft() domain.OrderDraft {
	lines := make([]domain.OrderDraftLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.OrderDraftLine{
			Name:  item.Name,
			Price: decimalOrZero(item.Price),
			Qty:   int(decimalOrZero(item.Qty).IntPart()),
		}
	}

	return domain.OrderDraft{
		StoreCode:     req.StoreCode,
		StaffUsername: req.StaffUsername,
		Discount:      decimalOrZero(req.Discount),
		Total:         decimalOrZero(req.Total),
		Lines:         lines,
	}
}
