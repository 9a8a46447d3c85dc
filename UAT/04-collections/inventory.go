// Package collections demonstrates the container policies: slices get a
// single filled element, byte slices carry the field name as bytes, maps
// come back empty but non-nil, and sized arrays differ between the
// generator (left zero) and the runtime engine (every element filled).
package collections

// Inventory exercises the generated container policies.
type Inventory struct {
	Tags   []string
	Blob   []byte
	Counts map[string]int
	Codes  [2]string
	Ratios []float64
}

// Shelf has no derived method; the reflective engine fills it.
type Shelf struct {
	Labels []string
	Stock  map[string]int
	Codes  [2]string
}
