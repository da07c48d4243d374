package models

import "github.com/shopspring/decimal"

// LineItem is a single billable entry on an invoice. TotalPrice is derived
// from Quantity and UnitPrice at construction and is never independently
// settable; a changed item is reconstructed.
type LineItem struct {
	SKU        SKU
	Info       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// NewLineItem validates the inputs and constructs a LineItem with its
// derived total. Quantity must be positive and the unit price non-negative.
func NewLineItem(sku, info string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	itemSKU, err := NewSKU(sku)
	if err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, NewValidationError("quantity", quantity, "must be a positive integer")
	}
	if unitPrice.IsNegative() {
		return LineItem{}, NewValidationError("unit_price", unitPrice, "must be non-negative")
	}
	return LineItem{
		SKU:        itemSKU,
		Info:       info,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// UnitPriceFormatted renders the unit price as "$X,XXX.XX".
func (li LineItem) UnitPriceFormatted() string { return FormatAmount(li.UnitPrice) }

// TotalPriceFormatted renders the derived total as "$X,XXX.XX".
func (li LineItem) TotalPriceFormatted() string { return FormatAmount(li.TotalPrice) }
