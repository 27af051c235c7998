// Package models defines the domain types for KisanMitra.
package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire format for price record dates. Lexicographic order
// on this layout equals chronological order, which the store's sorts rely on.
const DateLayout = "2006-01-02"

// PriceRecord is a single mandi price observation for a commodity.
// Prices are INR per quintal, mirroring the three-price format published
// by Agmarknet. Records are immutable once added to a store.
type PriceRecord struct {
	Commodity  string  `json:"commodity"`
	Market     string  `json:"market"`
	State      string  `json:"state"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	ModalPrice float64 `json:"modal_price"`
	Date       string  `json:"date"`
}

// Validate checks a record at the construction boundary. The store itself
// never validates; callers that accept untrusted input (feed files, the
// HTTP API) must call this before handing the record to a store.
func (p PriceRecord) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Commodity, validation.Required),
		validation.Field(&p.Market, validation.Required),
		validation.Field(&p.State, validation.Required),
		validation.Field(&p.MinPrice, validation.Min(0.0)),
		validation.Field(&p.MaxPrice, validation.Min(0.0)),
		validation.Field(&p.ModalPrice, validation.Min(0.0)),
		validation.Field(&p.Date, validation.Required, validation.Date(DateLayout)),
	)
}
