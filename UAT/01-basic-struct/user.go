// Package basic demonstrates the hand-written Defaulter route: declare a
// TestDefault method with mock values, then let tests override the fields
// they care about.
package basic

// User is a typical struct tests need mock instances of. Its production code
// has no sensible default, so the test default lives here instead.
type User struct {
	ID     int
	Name   string
	Email  string
	Active bool
}

// TestDefault returns a User with mock values for tests.
func (User) TestDefault() User {
	return User{
		ID:     0,
		Name:   "name",
		Email:  "email",
		Active: false,
	}
}
