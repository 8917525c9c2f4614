package search

// interleave performs a bounded round-robin merge over already-ranked lists:
// element 0 of each list in turn, then element 1, until limit suggestions
// are collected or every list is exhausted. This keeps the head of an
// autocomplete dropdown diverse even when one entity type dominates.
func interleave(limit int, lists ...[]Suggestion) []Suggestion {
	out := make([]Suggestion, 0, limit)
	for i := 0; ; i++ {
		advanced := false
		for _, l := range lists {
			if i >= len(l) {
				continue
			}
			out = append(out, l[i])
			advanced = true
			if len(out) == limit {
				return out
			}
		}
		if !advanced {
			return out
		}
	}
}
