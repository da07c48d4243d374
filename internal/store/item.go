package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"invoiceforge/pkg/models"
)

// InsertItem persists an invoice line item. A duplicate SKU returns
// ErrConflict.
func (s *Store) InsertItem(ctx context.Context, item models.LineItem) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO invoice_items (item_sku, item_info, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		item.SKU.String(), item.Info, item.Quantity, item.UnitPrice.String(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			s.log.Warn().
				Str("item_sku", item.SKU.String()).
				Msg("Invoice item already exists")
			return 0, fmt.Errorf("invoice item %s: %w", item.SKU, ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert invoice item: %w", err)
	}

	s.log.Info().
		Str("item_sku", item.SKU.String()).
		Str("item_info", item.Info).
		Int64("id", id).
		Msg("Inserted invoice item")

	return id, nil
}

const selectItemSQL = `
	SELECT item_sku, item_info, quantity, unit_price::text
	FROM invoice_items`

// GetItem fetches an invoice item by SKU. Returns ErrNotFound when the SKU
// is unknown.
func (s *Store) GetItem(ctx context.Context, sku string) (models.LineItem, error) {
	row := s.pool.QueryRow(ctx, selectItemSQL+` WHERE item_sku = $1`, sku)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.LineItem{}, fmt.Errorf("invoice item %s: %w", sku, ErrNotFound)
		}
		return models.LineItem{}, fmt.Errorf("failed to fetch invoice item %s: %w", sku, err)
	}
	return item, nil
}

// RecentItems returns up to limit invoice items, newest first.
func (s *Store) RecentItems(ctx context.Context, limit int) ([]models.LineItem, error) {
	rows, err := s.pool.Query(ctx, selectItemSQL+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// SearchItems matches query case-insensitively against the SKU and the item
// description. An empty query matches all.
func (s *Store) SearchItems(ctx context.Context, query string) ([]models.LineItem, error) {
	pattern := "%" + query + "%"
	rows, err := s.pool.Query(ctx, selectItemSQL+`
		WHERE item_sku ILIKE $1 OR item_info ILIKE $1
		ORDER BY item_sku`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search invoice items: %w", err)
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("query", query).
		Int("matches", len(items)).
		Msg("Invoice item search completed")

	return items, nil
}

// RandomItems returns up to limit invoice items in random order.
func (s *Store) RandomItems(ctx context.Context, limit int) ([]models.LineItem, error) {
	rows, err := s.pool.Query(ctx, selectItemSQL+` ORDER BY random() LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random invoice items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// ItemSKUs lists every stored item_sku, for use as a generation exclusion
// list.
func (s *Store) ItemSKUs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT item_sku FROM invoice_items ORDER BY item_sku`)
	if err != nil {
		return nil, fmt.Errorf("failed to list item SKUs: %w", err)
	}
	defer rows.Close()

	var skus []string
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return nil, fmt.Errorf("failed to scan item SKU: %w", err)
		}
		skus = append(skus, sku)
	}
	return skus, rows.Err()
}

func collectItems(rows pgx.Rows) ([]models.LineItem, error) {
	var items []models.LineItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (models.LineItem, error) {
	var (
		sku, info, price string
		quantity         int
	)
	if err := row.Scan(&sku, &info, &quantity, &price); err != nil {
		return models.LineItem{}, err
	}

	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return models.LineItem{}, fmt.Errorf("stored unit price is invalid: %w", err)
	}

	return models.NewLineItem(sku, info, quantity, unitPrice)
}
