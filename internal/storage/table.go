// Package storage provides a single generic data-access table over pgx.
// Each entity supplies a Mapping describing its schema instead of hand
// writing one repository per table.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("not found")

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Mapping describes how an entity binds to its table. Columns excludes the
// id column; Values must return one value per entry in Columns, in order.
type Mapping[T any] struct {
	Table    string
	IDColumn string
	Columns  []string
	Values   func(*T) []any
	SetID    func(*T, int64)
	OrderBy  string
}

type Table[T any] struct {
	db Querier
	m  Mapping[T]
}

func NewTable[T any](db Querier, m Mapping[T]) *Table[T] {
	if m.OrderBy == "" {
		m.OrderBy = m.IDColumn
	}
	return &Table[T]{db: db, m: m}
}

func (t *Table[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	rows, err := t.db.Query(ctx, selectSQL(t.m.Table, t.m.IDColumn, t.m.Columns)+
		fmt.Sprintf(" WHERE %s = $1", t.m.IDColumn), id)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.m.Table, err)
	}
	e, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.m.Table, err)
	}
	return e, nil
}

func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	rows, err := t.db.Query(ctx, selectSQL(t.m.Table, t.m.IDColumn, t.m.Columns)+
		" ORDER BY "+t.m.OrderBy)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.m.Table, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.m.Table, err)
	}
	return out, nil
}

func (t *Table[T]) Insert(ctx context.Context, e *T) error {
	var id int64
	err := t.db.QueryRow(ctx, insertSQL(t.m.Table, t.m.IDColumn, t.m.Columns), t.m.Values(e)...).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert %s: %w", t.m.Table, err)
	}
	t.m.SetID(e, id)
	return nil
}

func (t *Table[T]) Update(ctx context.Context, id int64, e *T) error {
	args := append(t.m.Values(e), id)
	ct, err := t.db.Exec(ctx, updateSQL(t.m.Table, t.m.IDColumn, t.m.Columns), args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.m.Table, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	t.m.SetID(e, id)
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	ct, err := t.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.m.Table, t.m.IDColumn), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.m.Table, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SQL text below is assembled from the static mapping only; user input is
// always passed as query parameters.

func selectSQL(table, idCol string, cols []string) string {
	all := append([]string{idCol}, cols...)
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(all, ", "), table)
}

func insertSQL(table, idCol string, cols []string) string {
	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(cols, ", "), strings.Join(ph, ", "), idCol)
}

func updateSQL(table, idCol string, cols []string) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(sets, ", "), idCol, len(cols)+1)
}
