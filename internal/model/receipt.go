package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawReceipt is the untrusted wire shape. Every scalar arrives as a string;
// pointers distinguish a missing field from an empty one.
type RawReceipt struct {
	Retailer     *string    `json:"retailer"`
	PurchaseDate *string    `json:"purchaseDate"`
	PurchaseTime *string    `json:"purchaseTime"`
	Total        *string    `json:"total"`
	Items        *[]RawItem `json:"items"`
}

type RawItem struct {
	ShortDescription *string `json:"shortDescription"`
	Price            *string `json:"price"`
}

// Receipt is the canonical form. Only the validator constructs it.
// PurchasedAt is the literal calendar date and wall-clock time composed in
// UTC; scoring reads Day() and Hour() straight off it, no zone shifting.
type Receipt struct {
	Retailer    string          `json:"retailer"`
	PurchasedAt time.Time       `json:"purchasedAt"`
	Total       decimal.Decimal `json:"total"`
	Items       []Item          `json:"items"`
}

type Item struct {
	ShortDescription string          `json:"shortDescription"`
	Price            decimal.Decimal `json:"price"`
}

// Record pairs a receipt with its points under the id it was stored with.
// Records are written once and never updated.
type Record struct {
	ID      string  `json:"id"`
	Receipt Receipt `json:"receipt"`
	Points  int64   `json:"points"`
}
