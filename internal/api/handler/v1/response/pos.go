package response

import "github.com/kleverretail/retail-cloud/internal/domain"

// The POS client was built against a server that sorts JSON keys, so the
// fields below are declared alphabetically.

type POSStore struct {
	Active bool    `json:"active"`
	City   *string `json:"city"`
	Code   string  `json:"code"`
	Name   string  `json:"name"`
}

type POSItem struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type POSOrderCreated struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

type POSError struct {
	Error string `json:"error"`
}

func NewPOSStores(stores []domain.Store) []POSStore {
	out := make([]POSStore, len(stores))
	for i, s := range stores {
		out[i] = POSStore{
			Active: s.Active,
			City:   s.City,
			Code:   s.Code,
			Name:   s.Name,
		}
	}

	return out
}

func NewPOSItems(items []domain.Item) []POSItem {
	out := make([]POSItem, len(items))
	for i, item := range items {
		out[i] = POSItem{
			Code:  item.Code,
			Name:  item.Name,
			Price: item.Price,
			Stock: item.Stock,
		}
	}

	return out
}
