package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	assert.Equal(t, tierExact, tierFor("widget a", "Widget A"))
	assert.Equal(t, tierPrefix, tierFor("wid", "Widget A"))
	assert.Equal(t, tierContains, tierFor("get", "Widget A"))
	assert.Equal(t, 0, tierFor("bolt", "Widget A"))

	// best tier across fields wins: SKU exact beats name contains
	assert.Equal(t, tierExact, tierFor("wid-001", "Super Widget", "WID-001"))
}

func TestRankProducts_ExactBeforePrefixBeforeContains(t *testing.T) {
	cands := []ProductCandidate{
		{ID: 1, Name: "Super Widget A", SKU: "SUP-1", Price: 9.99},
		{ID: 2, Name: "Widget A", SKU: "WID-001", Price: 29.99},
		{ID: 3, Name: "Widget Assembly", SKU: "WID-002", Price: 12.50},
	}
	got := rankProducts(cands, "Widget A", 10)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID) // exact
	assert.Equal(t, int64(3), got[1].ID) // prefix
	assert.Equal(t, int64(1), got[2].ID) // contains
}

func TestRankProducts_CaseInsensitive(t *testing.T) {
	cands := []ProductCandidate{{ID: 1, Name: "Widget A", SKU: "WID-001"}}
	upper := rankProducts(cands, "WIDGET", 10)
	lower := rankProducts(cands, "widget", 10)
	assert.Equal(t, upper, lower)
	require.Len(t, upper, 1)
}

func TestRankProducts_MatchesSKU(t *testing.T) {
	cands := []ProductCandidate{{ID: 7, Name: "Gadget B", SKU: "GAD-B-12", Price: 49.99}}
	got := rankProducts(cands, "gad-b", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "Gadget B", got[0].Text)
	assert.Equal(t, "GAD-B-12", got[0].Metadata["sku"])
	assert.Equal(t, 49.99, got[0].Metadata["price"])
}

func TestRankProducts_NonMatchingCandidateExcluded(t *testing.T) {
	cands := []ProductCandidate{
		{ID: 1, Name: "Widget A", SKU: "WID-001"},
		{ID: 2, Name: "Bolt", SKU: "BLT-1"},
	}
	got := rankProducts(cands, "widget", 10)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestRankProducts_Truncates(t *testing.T) {
	cands := []ProductCandidate{
		{ID: 1, Name: "Widget A", SKU: "W1"},
		{ID: 2, Name: "Widget B", SKU: "W2"},
		{ID: 3, Name: "Widget C", SKU: "W3"},
	}
	got := rankProducts(cands, "widget", 2)
	assert.Len(t, got, 2)
}

func TestRankProducts_Subtext(t *testing.T) {
	cands := []ProductCandidate{{ID: 1, Name: "Widget A", SKU: "WID-001", Price: 29.99}}
	got := rankProducts(cands, "widget", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "$29.99 - SKU WID-001", got[0].Subtext)
}

func TestRankSuppliers_AlphabeticalWithinTier(t *testing.T) {
	cands := []SupplierCandidate{
		{ID: 1, Name: "Acme Zeta", Email: "z@acme.test"},
		{ID: 2, Name: "Acme Alpha", Email: "a@acme.test"},
	}
	got := rankSuppliers(cands, "acme", 10)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Alpha", got[0].Text)
	assert.Equal(t, "a@acme.test", got[0].Subtext)
}

func TestRankOrders_RecentFirstWithinTier(t *testing.T) {
	older := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	cands := []OrderCandidate{
		{ID: 1, Name: "Restock widgets", Status: "pending", OrderDate: older},
		{ID: 2, Name: "Restock widgets", Status: "shipped", OrderDate: newer},
	}
	got := rankOrders(cands, "restock", 10)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "shipped - 2026-03-05", got[0].Subtext)
}

func TestRankOrders_TierBeatsDate(t *testing.T) {
	older := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	cands := []OrderCandidate{
		{ID: 1, Name: "Restock", Status: "pending", OrderDate: older},  // exact
		{ID: 2, Name: "Restocking run", Status: "pending", OrderDate: newer}, // prefix
	}
	got := rankOrders(cands, "restock", 10)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
}
