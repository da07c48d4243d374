package models

import "regexp"

// DefaultCountry is assumed when an address is constructed without a country.
const DefaultCountry = "Canada"

// canadianPostalCode matches "A1A 1A1" with an optional space.
var canadianPostalCode = regexp.MustCompile(`^[A-Z]\d[A-Z]\s?\d[A-Z]\d$`)

// Address is an immutable postal address. Two addresses with identical fields
// are equal. A corrected address is reconstructed, never mutated.
type Address struct {
	Line1      string
	Line2      string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// NewAddress validates the fields and constructs an Address. Line1 is
// required. When the country is Canada the postal code must match the
// Canadian pattern; other countries are unconstrained.
func NewAddress(line1, line2, city, province, postalCode, country string) (Address, error) {
	if country == "" {
		country = DefaultCountry
	}
	if line1 == "" {
		return Address{}, NewValidationError("address_line1", line1, "address line 1 is required")
	}
	if country == DefaultCountry && !canadianPostalCode.MatchString(postalCode) {
		return Address{}, NewValidationError("postal_code", postalCode, "invalid Canadian postal code")
	}
	return Address{
		Line1:      line1,
		Line2:      line2,
		City:       city,
		Province:   province,
		PostalCode: postalCode,
		Country:    country,
	}, nil
}
