package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/copilot-skills-example/octocat-supply-api/internal/storage"
)

type Repo struct{ DB *pgxpool.Pool }

// CreateOrderTx writes the order plus all its detail rows in one
// transaction. Any failure rolls the whole write back; no partial order is
// ever visible. Ids are assigned into o and details on success.
func (r *Repo) CreateOrderTx(ctx context.Context, o *Order, details []OrderDetail) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (branch_id, order_date, status, name, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id`,
		o.BranchID, o.OrderDate, o.Status, o.Name, o.Description).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range details {
		details[i].OrderID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_details (order_id, product_id, quantity, unit_price, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING order_detail_id`,
			details[i].OrderID, details[i].ProductID, details[i].Quantity,
			details[i].UnitPrice, details[i].Notes).Scan(&details[i].ID)
		if err != nil {
			return fmt.Errorf("insert order detail: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *Repo) OrderByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := r.DB.QueryRow(ctx, `
		SELECT order_id, branch_id, order_date, status, name, description
		FROM orders WHERE order_id = $1`, id).
		Scan(&o.ID, &o.BranchID, &o.OrderDate, &o.Status, &o.Name, &o.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}

func (r *Repo) DetailsByOrder(ctx context.Context, orderID int64) ([]OrderDetail, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_detail_id, order_id, product_id, quantity, unit_price, notes
		FROM order_details WHERE order_id = $1
		ORDER BY order_detail_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order details: %w", err)
	}
	defer rows.Close()

	var out []OrderDetail
	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Notes); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_id, branch_id, order_date, status, name, description
		FROM orders ORDER BY order_date DESC, order_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.BranchID, &o.OrderDate, &o.Status, &o.Name, &o.Description); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateStatus(ctx context.Context, id int64, status string) error {
	ct, err := r.DB.Exec(ctx, `UPDATE orders SET status = $2 WHERE order_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
