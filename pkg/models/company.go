package models

// Company is a validated party on an invoice, used as supplier or customer.
// It is an immutable value object; persistence is insert-only and a duplicate
// CompanyID is a conflict at the storage boundary, not an upsert.
type Company struct {
	ID             CompanyID
	Name           string
	BillingAddress Address

	// ShippingAddress is nil when not provided. Absence is distinct from
	// "same as billing"; the billing address is never auto-substituted.
	ShippingAddress *Address

	PhoneNumber string
	Email       string
	Website     string
}

// NewCompany validates the inputs and constructs a Company. The ID must match
// the identifier pattern and the name is required. The shipping address is
// copied so the Company does not alias caller-owned memory.
func NewCompany(id, name string, billing Address, shipping *Address, phone, email, website string) (Company, error) {
	companyID, err := NewCompanyID(id)
	if err != nil {
		return Company{}, err
	}
	if name == "" {
		return Company{}, NewValidationError("company_name", name, "company name is required")
	}

	var shippingCopy *Address
	if shipping != nil {
		addr := *shipping
		shippingCopy = &addr
	}

	return Company{
		ID:              companyID,
		Name:            name,
		BillingAddress:  billing,
		ShippingAddress: shippingCopy,
		PhoneNumber:     phone,
		Email:           email,
		Website:         website,
	}, nil
}
