package models

import "regexp"

// identifierPattern matches 4 uppercase ASCII letters followed by 1 digit,
// e.g. "ABCD1". Company IDs and item SKUs share the shape but are distinct
// types so one cannot be passed where the other is expected.
var identifierPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]$`)

// CompanyID is the human-readable business key of a company.
type CompanyID string

// NewCompanyID validates token against the identifier pattern.
func NewCompanyID(token string) (CompanyID, error) {
	if !identifierPattern.MatchString(token) {
		return "", NewValidationError("company_id", token, "must be 4 uppercase letters followed by 1 digit")
	}
	return CompanyID(token), nil
}

func (id CompanyID) String() string { return string(id) }

// SKU identifies a billable line item.
type SKU string

// NewSKU validates token against the identifier pattern.
func NewSKU(token string) (SKU, error) {
	if !identifierPattern.MatchString(token) {
		return "", NewValidationError("item_sku", token, "must be 4 uppercase letters followed by 1 digit")
	}
	return SKU(token), nil
}

func (s SKU) String() string { return string(s) }
