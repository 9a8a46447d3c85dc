// Package randomvals demonstrates the escape hatch for randomized test
// data: a hand-written TestDefault can draw from any generator it likes,
// and overrides still compose on top.
package randomvals

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Signup deliberately randomizes its defaults; tests that need a fixed
// value pin it with an override.
type Signup struct {
	ID    string
	Name  string
	Email string
}

// TestDefault returns a Signup with randomized but shape-valid values.
func (Signup) TestDefault() Signup {
	return Signup{
		ID:    uuid.NewString(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
	}
}
