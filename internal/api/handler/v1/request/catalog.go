package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type CreateStoreRequest struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	City *string `json:"city"`
}

// Normalize trims every text field. A blank city is stored as null.
func (req *CreateStoreRequest) Normalize() {
	trim(&req.Code)
	trim(&req.Name)
	trim(req.City)
	if req.City != nil && *req.City == "" {
		req.City = nil
	}
}

func (req *CreateStoreRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(1, 32), validation.By(matchRegexp2(codeRegex, errInvalidCode))),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&req.City, validation.Length(0, 64)),
	)
}

type CreateItemRequest struct {
	Code  string           `json:"code"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
	Stock *int             `json:"stock"`
}

func (req *CreateItemRequest) Normalize() {
	trim(&req.Code)
	trim(&req.Name)
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(1, 32), validation.By(matchRegexp2(codeRegex, errInvalidCode))),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&req.Price, validation.NotNil, validation.By(nonNegative), validation.By(withinMaxAmount)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

func (req *CreateItemRequest) PriceFloat() float64 {
	return decimalOrZero(req.Price).InexactFloat64()
}

func (req *CreateItemRequest) StockOrZero() int {
	if req.Stock == nil {
		return 0
	}

	return *req.Stock
}
