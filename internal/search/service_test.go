package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore filters in memory the way the SQL containment queries do.
type fakeStore struct {
	products  []ProductCandidate
	suppliers []SupplierCandidate
	orders    []OrderCandidate
	err       error
}

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

func (f *fakeStore) ProductCandidates(_ context.Context, q string, limit int) ([]ProductCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []ProductCandidate
	for _, c := range f.products {
		if containsFold(c.Name, q) || containsFold(c.SKU, q) {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) SupplierCandidates(_ context.Context, q string, limit int) ([]SupplierCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []SupplierCandidate
	for _, c := range f.suppliers {
		if containsFold(c.Name, q) {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) OrderCandidates(_ context.Context, q string, limit int) ([]OrderCandidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []OrderCandidate
	for _, c := range f.orders {
		if containsFold(c.Name, q) {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func seededStore() *fakeStore {
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return &fakeStore{
		products: []ProductCandidate{
			{ID: 5, Name: "Widget A", SKU: "WID-001", Price: 29.99},
			{ID: 6, Name: "Widget B", SKU: "WID-002", Price: 19.99},
			{ID: 12, Name: "Gadget B", SKU: "GAD-001", Price: 49.99},
		},
		suppliers: []SupplierCandidate{
			{ID: 3, Name: "Widget Works Inc", Email: "sales@widgetworks.test"},
		},
		orders: []OrderCandidate{
			{ID: 9, Name: "Widget restock", Status: "pending", OrderDate: day},
		},
	}
}

func TestSuggest_InterleavesAcrossEntityTypes(t *testing.T) {
	svc := NewService(seededStore())
	got, err := svc.Suggest(context.Background(), "widget", "", 10)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	types := map[string]bool{}
	for _, s := range got {
		types[s.Type] = true
	}
	assert.Greater(t, len(types), 1, "expected more than one entity type in results")

	// head of the list alternates types
	assert.Equal(t, TypeProduct, got[0].Type)
	assert.Equal(t, TypeSupplier, got[1].Type)
	assert.Equal(t, TypeOrder, got[2].Type)
}

func TestSuggest_RespectsLimit(t *testing.T) {
	svc := NewService(seededStore())
	got, err := svc.Suggest(context.Background(), "widget", "", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSuggest_EntityFilter(t *testing.T) {
	svc := NewService(seededStore())
	got, err := svc.Suggest(context.Background(), "widget", EntitySuppliers, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, TypeSupplier, got[0].Type)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestSuggest_EntityFilterGetsFullLimit(t *testing.T) {
	svc := NewService(seededStore())
	got, err := svc.Suggest(context.Background(), "widget", EntityProducts, 10)
	require.NoError(t, err)
	// both widget products, not a third of the limit
	assert.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, TypeProduct, s.Type)
	}
}

func TestSuggest_NoMatchesReturnsEmpty(t *testing.T) {
	svc := NewService(seededStore())
	got, err := svc.Suggest(context.Background(), "zzz", "", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	svc := NewService(seededStore())
	upper, err := svc.Suggest(context.Background(), "WIDGET", "", 10)
	require.NoError(t, err)
	lower, err := svc.Suggest(context.Background(), "widget", "", 10)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSuggest_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(&fakeStore{err: boom})
	_, err := svc.Suggest(context.Background(), "widget", "", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
