package basic_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"github.com/toejough/defaulttest"
	basic "github.com/toejough/defaulttest/UAT/01-basic-struct"
)

func TestMakeDispatchesToHandWrittenDefaulter(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	user := defaulttest.Make[basic.User]()

	g.Expect(user).To(Equal(basic.User{ID: 0, Name: "name", Email: "email", Active: false}))
}

func TestOverrideSingleField(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	// Construct the base instance, then override only what the test
	// cares about. Adding a field to User later won't touch this test.
	user := defaulttest.Make[basic.User]()
	user.ID = 99

	g.Expect(user).To(Equal(basic.User{ID: 99, Name: "name", Email: "email", Active: false}))
}

func TestMakeWithOverridesInOneExpression(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	user := defaulttest.MakeWith(func(u *basic.User) {
		u.ID = 99
		u.Active = true
	})

	g.Expect(user.ID).To(Equal(99))
	g.Expect(user.Active).To(BeTrue())
	g.Expect(user.Name).To(Equal("name"))
	g.Expect(user.Email).To(Equal("email"))
}

func TestInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	first := defaulttest.Make[basic.User]()
	second := defaulttest.Make[basic.User]()

	first.Name = "mutated"

	g.Expect(second.Name).To(Equal("name"))
}

func TestRepeatedCallsAreDeterministic(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(defaulttest.Make[basic.User]()).To(Equal(defaulttest.Make[basic.User]()))
}
