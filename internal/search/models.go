// Package search implements the autocomplete suggestion engine: per-entity
// relevance ranking plus a round-robin merge across entity types.
package search

import "time"

const (
	TypeProduct  = "product"
	TypeSupplier = "supplier"
	TypeOrder    = "order"
)

// Suggestion is the normalized result shape unifying the three entity types.
type Suggestion struct {
	Type     string         `json:"type"`
	ID       int64          `json:"id"`
	Text     string         `json:"text"`
	Subtext  string         `json:"subtext"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Candidate rows as fetched from the store. The store only applies the
// case-insensitive containment filter; ranking happens here.

type ProductCandidate struct {
	ID    int64
	Name  string
	SKU   string
	Price float64
}

type SupplierCandidate struct {
	ID    int64
	Name  string
	Email string
}

type OrderCandidate struct {
	ID        int64
	Name      string
	Status    string
	OrderDate time.Time
}
