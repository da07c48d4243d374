package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"invoiceforge/pkg/models"
)

const insertAddressSQL = `
	INSERT INTO postal_addresses (address_line1, address_line2, city, province, postal_code, country)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

// InsertCompany persists a company together with its billing and optional
// shipping address. The three inserts run in one transaction: a duplicate
// company_id returns ErrConflict and leaves no orphan address rows.
func (s *Store) InsertCompany(ctx context.Context, company models.Company) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	billingID, err := insertAddress(ctx, tx, company.BillingAddress)
	if err != nil {
		return 0, fmt.Errorf("failed to insert billing address: %w", err)
	}

	var shippingID *int64
	if company.ShippingAddress != nil {
		id, err := insertAddress(ctx, tx, *company.ShippingAddress)
		if err != nil {
			return 0, fmt.Errorf("failed to insert shipping address: %w", err)
		}
		shippingID = &id
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO companies (company_id, company_name, address_billing, address_shipping, phone_number, email, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		company.ID.String(), company.Name, billingID, shippingID,
		company.PhoneNumber, company.Email, company.Website,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			s.log.Warn().
				Str("company_id", company.ID.String()).
				Str("company_name", company.Name).
				Msg("Company already exists")
			return 0, fmt.Errorf("company %s: %w", company.ID, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert company: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit company insert: %w", err)
	}

	s.log.Info().
		Str("company_id", company.ID.String()).
		Str("company_name", company.Name).
		Int64("id", id).
		Msg("Inserted company")

	return id, nil
}

func insertAddress(ctx context.Context, tx pgx.Tx, addr models.Address) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertAddressSQL,
		addr.Line1, addr.Line2, addr.City, addr.Province, addr.PostalCode, addr.Country,
	).Scan(&id)
	return id, err
}

const selectCompanySQL = `
	SELECT c.company_id, c.company_name, c.phone_number, c.email, c.website,
	       b.address_line1, b.address_line2, b.city, b.province, b.postal_code, b.country,
	       s.address_line1, s.address_line2, s.city, s.province, s.postal_code, s.country
	FROM companies c
	LEFT JOIN postal_addresses b ON c.address_billing = b.id
	LEFT JOIN postal_addresses s ON c.address_shipping = s.id`

// GetCompany fetches a company by its business key. Returns ErrNotFound when
// no company carries the given ID.
func (s *Store) GetCompany(ctx context.Context, companyID string) (models.Company, error) {
	row := s.pool.QueryRow(ctx, selectCompanySQL+` WHERE c.company_id = $1`, companyID)

	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Company{}, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
		}
		return models.Company{}, fmt.Errorf("failed to fetch company %s: %w", companyID, err)
	}
	return company, nil
}

// SearchCompanies matches query case-insensitively against the company ID,
// name, phone number, email and website. An empty query matches all.
func (s *Store) SearchCompanies(ctx context.Context, query string) ([]models.Company, error) {
	pattern := "%" + query + "%"
	rows, err := s.pool.Query(ctx, selectCompanySQL+`
		WHERE c.company_id ILIKE $1
		   OR c.company_name ILIKE $1
		   OR c.phone_number ILIKE $1
		   OR c.email ILIKE $1
		   OR c.website ILIKE $1
		ORDER BY c.company_id`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	companies, err := collectCompanies(rows)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("query", query).
		Int("matches", len(companies)).
		Msg("Company search completed")

	return companies, nil
}

// RandomCompanies returns up to limit companies in random order. The invoice
// command uses it to pick a supplier and customer pair.
func (s *Store) RandomCompanies(ctx context.Context, limit int) ([]models.Company, error) {
	rows, err := s.pool.Query(ctx, selectCompanySQL+` ORDER BY random() LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random companies: %w", err)
	}
	defer rows.Close()

	return collectCompanies(rows)
}

// CompanyIDs lists every stored company_id, for use as a generation
// exclusion list.
func (s *Store) CompanyIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT company_id FROM companies ORDER BY company_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list company IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func collectCompanies(rows pgx.Rows) ([]models.Company, error) {
	var companies []models.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func scanCompany(row pgx.Row) (models.Company, error) {
	var (
		companyID, companyName            string
		phone, email, website             *string
		bl1, bl2, bCity, bProv, bPC, bCtr *string
		sl1, sl2, sCity, sProv, sPC, sCtr *string
	)

	err := row.Scan(&companyID, &companyName, &phone, &email, &website,
		&bl1, &bl2, &bCity, &bProv, &bPC, &bCtr,
		&sl1, &sl2, &sCity, &sProv, &sPC, &sCtr)
	if err != nil {
		return models.Company{}, err
	}

	billing, err := models.NewAddress(deref(bl1), deref(bl2), deref(bCity), deref(bProv), deref(bPC), deref(bCtr))
	if err != nil {
		return models.Company{}, fmt.Errorf("stored billing address is invalid: %w", err)
	}

	var shipping *models.Address
	if sl1 != nil {
		addr, err := models.NewAddress(deref(sl1), deref(sl2), deref(sCity), deref(sProv), deref(sPC), deref(sCtr))
		if err != nil {
			return models.Company{}, fmt.Errorf("stored shipping address is invalid: %w", err)
		}
		shipping = &addr
	}

	return models.NewCompany(companyID, companyName, billing, shipping,
		deref(phone), deref(email), deref(website))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
