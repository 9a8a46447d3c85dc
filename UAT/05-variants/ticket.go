// Package variants demonstrates the variant rule: a named type whose
// variants are declared with iota defaults to its first declared variant,
// which is also its zero value.
package variants

// Status is an iota-style enum.
type Status int

// StatusPending is declared first, so it is the test default.
const (
	StatusPending Status = iota
	StatusActive
	StatusClosed
)

// Region is a named string type; it fills like a string.
type Region string

// Ticket mixes variant, named-string, and plain-string fields.
type Ticket struct {
	State  Status
	Region Region
	Title  string
}
