package generate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[{"a":1}]`, `[{"a":1}]`},
		{"```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"  \n```json\n[]\n```\n ", `[]`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripFences(tt.in))
	}
}

func TestBuildCompany(t *testing.T) {
	rec := companyRecord{
		CompanyID:   "MAPL1",
		CompanyName: "Maple Syrup Logistics",
		AddressBilling: addressRecord{
			AddressLine1: "100 King St W",
			City:         "Toronto",
			Province:     "ON",
			PostalCode:   "M5X 1A9",
			Country:      "Canada",
		},
		PhoneNumber: "+1-416-555-0100",
		Email:       "hello@maplesyruplogistics.ca",
		Website:     "https://maplesyruplogistics.ca",
	}

	company, err := buildCompany(rec)
	require.NoError(t, err)
	assert.Equal(t, "MAPL1", company.ID.String())
	assert.Nil(t, company.ShippingAddress)
}

func TestBuildCompanyRejectsInvalidRecord(t *testing.T) {
	rec := companyRecord{
		CompanyID:   "maple", // invalid identifier shape
		CompanyName: "Maple Syrup Logistics",
		AddressBilling: addressRecord{
			AddressLine1: "100 King St W",
			City:         "Toronto",
			Province:     "ON",
			PostalCode:   "M5X 1A9",
		},
	}
	_, err := buildCompany(rec)
	assert.Error(t, err)

	rec.CompanyID = "MAPL1"
	rec.AddressBilling.PostalCode = "not a postal code"
	_, err = buildCompany(rec)
	assert.Error(t, err)
}

func TestLineItemRecordDecodesIntoValidItem(t *testing.T) {
	rec := lineItemRecord{
		ItemSKU:   "KEYB1",
		ItemInfo:  "Mechanical keyboard, tenkeyless",
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("149.99"),
	}

	li, err := buildLineItem(rec)
	require.NoError(t, err)
	assert.True(t, li.TotalPrice.Equal(decimal.RequireFromString("299.98")))

	rec.Quantity = 0
	_, err = buildLineItem(rec)
	assert.Error(t, err)
}
