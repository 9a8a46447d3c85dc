// Package nested demonstrates recursion: nested struct fields, pointer
// fields, and self-references all resolve without any hand-written defaults.
package nested

// Order nests a value struct, a pointer struct, and a self-reference.
type Order struct {
	ID       int
	Customer Customer
	Ship     *Address
	Parent   *Order
	Notes    []string
}

// Customer has no TestDefault of its own; it gets filled reflectively.
type Customer struct {
	Name  string
	Email string
}

// Address is reached through a pointer field.
type Address struct {
	Street string
	City   string
}
