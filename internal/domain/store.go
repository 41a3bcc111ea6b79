package domain

import "time"

type Store struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	City      *string   `json:"city"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID        uint    `json:"id"`
	StoreID   uint    `json:"store_id"`
	StoreCode string  `json:"store_code,omitempty"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}
