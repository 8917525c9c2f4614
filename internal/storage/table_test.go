package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSQL(t *testing.T) {
	got := selectSQL("suppliers", "supplier_id", []string{"name", "email"})
	assert.Equal(t, "SELECT supplier_id, name, email FROM suppliers", got)
}

func TestInsertSQL(t *testing.T) {
	got := insertSQL("suppliers", "supplier_id", []string{"name", "email"})
	assert.Equal(t, "INSERT INTO suppliers (name, email) VALUES ($1, $2) RETURNING supplier_id", got)
}

func TestUpdateSQL(t *testing.T) {
	got := updateSQL("suppliers", "supplier_id", []string{"name", "email"})
	assert.Equal(t, "UPDATE suppliers SET name = $1, email = $2 WHERE supplier_id = $3", got)
}
