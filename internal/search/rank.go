package search

import (
	"fmt"
	"sort"
	"strings"
)

// Relevance tiers: exact beats prefix beats contains.
const (
	tierExact    = 1
	tierPrefix   = 2
	tierContains = 3
)

// tierFor returns the best tier any field achieves against the case-folded
// query, or 0 when no field contains it at all.
func tierFor(q string, fields ...string) int {
	best := 0
	for _, f := range fields {
		f = strings.ToLower(f)
		switch {
		case f == q:
			return tierExact
		case strings.HasPrefix(f, q):
			if best == 0 || tierPrefix < best {
				best = tierPrefix
			}
		case strings.Contains(f, q):
			if best == 0 || tierContains < best {
				best = tierContains
			}
		}
	}
	return best
}

func rankProducts(cands []ProductCandidate, query string, limit int) []Suggestion {
	q := strings.ToLower(query)
	type ranked struct {
		tier int
		c    ProductCandidate
	}
	rs := make([]ranked, 0, len(cands))
	for _, c := range cands {
		if t := tierFor(q, c.Name, c.SKU); t > 0 {
			rs = append(rs, ranked{tier: t, c: c})
		}
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].tier != rs[j].tier {
			return rs[i].tier < rs[j].tier
		}
		if ni, nj := strings.ToLower(rs[i].c.Name), strings.ToLower(rs[j].c.Name); ni != nj {
			return ni < nj
		}
		return rs[i].c.ID < rs[j].c.ID
	})
	out := make([]Suggestion, 0, min(limit, len(rs)))
	for _, r := range rs[:min(limit, len(rs))] {
		out = append(out, Suggestion{
			Type:    TypeProduct,
			ID:      r.c.ID,
			Text:    r.c.Name,
			Subtext: fmt.Sprintf("$%.2f - SKU %s", r.c.Price, r.c.SKU),
			Metadata: map[string]any{
				"price": r.c.Price,
				"sku":   r.c.SKU,
			},
		})
	}
	return out
}

func rankSuppliers(cands []SupplierCandidate, query string, limit int) []Suggestion {
	q := strings.ToLower(query)
	type ranked struct {
		tier int
		c    SupplierCandidate
	}
	rs := make([]ranked, 0, len(cands))
	for _, c := range cands {
		if t := tierFor(q, c.Name); t > 0 {
			rs = append(rs, ranked{tier: t, c: c})
		}
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].tier != rs[j].tier {
			return rs[i].tier < rs[j].tier
		}
		if ni, nj := strings.ToLower(rs[i].c.Name), strings.ToLower(rs[j].c.Name); ni != nj {
			return ni < nj
		}
		return rs[i].c.ID < rs[j].c.ID
	})
	out := make([]Suggestion, 0, min(limit, len(rs)))
	for _, r := range rs[:min(limit, len(rs))] {
		out = append(out, Suggestion{
			Type:    TypeSupplier,
			ID:      r.c.ID,
			Text:    r.c.Name,
			Subtext: r.c.Email,
		})
	}
	return out
}

func rankOrders(cands []OrderCandidate, query string, limit int) []Suggestion {
	q := strings.ToLower(query)
	type ranked struct {
		tier int
		c    OrderCandidate
	}
	rs := make([]ranked, 0, len(cands))
	for _, c := range cands {
		if t := tierFor(q, c.Name); t > 0 {
			rs = append(rs, ranked{tier: t, c: c})
		}
	}
	// within a tier, most recent order first
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].tier != rs[j].tier {
			return rs[i].tier < rs[j].tier
		}
		if !rs[i].c.OrderDate.Equal(rs[j].c.OrderDate) {
			return rs[i].c.OrderDate.After(rs[j].c.OrderDate)
		}
		return rs[i].c.ID < rs[j].c.ID
	})
	out := make([]Suggestion, 0, min(limit, len(rs)))
	for _, r := range rs[:min(limit, len(rs))] {
		out = append(out, Suggestion{
			Type:    TypeOrder,
			ID:      r.c.ID,
			Text:    r.c.Name,
			Subtext: fmt.Sprintf("%s - %s", r.c.Status, r.c.OrderDate.Format("2006-01-02")),
		})
	}
	return out
}
