package search

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo fetches candidate rows with parameterized containment queries. The
// ILIKE filter is the containment floor; relevance ordering happens in Go.
type Repo struct{ DB *pgxpool.Pool }

var _ Store = (*Repo)(nil)

func (r *Repo) ProductCandidates(ctx context.Context, q string, limit int) ([]ProductCandidate, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT product_id, name, sku, price FROM products
		WHERE name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2`, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductCandidate
	for rows.Next() {
		var c ProductCandidate
		if err := rows.Scan(&c.ID, &c.Name, &c.SKU, &c.Price); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) SupplierCandidates(ctx context.Context, q string, limit int) ([]SupplierCandidate, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT supplier_id, name, email FROM suppliers
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2`, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SupplierCandidate
	for rows.Next() {
		var c SupplierCandidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) OrderCandidates(ctx context.Context, q string, limit int) ([]OrderCandidate, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_id, name, status, order_date FROM orders
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY order_date DESC LIMIT $2`, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderCandidate
	for rows.Next() {
		var c OrderCandidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.OrderDate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
