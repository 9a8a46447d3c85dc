// Package derived demonstrates build-time derivation: a go:generate directive
// produces the TestDefault method instead of anyone writing it by hand.
package derived

// Profile has no hand-written TestDefault; defgen derives one.
type Profile struct {
	ID     int
	Name   string
	Email  string
	Active bool
}
