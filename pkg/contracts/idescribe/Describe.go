package idescribe

import "github.com/simplecontainer/inventory/pkg/describe"

// Describe is implemented by every resource record so that presentation code
// can handle any kind without knowing its shape.
type Describe interface {
	GetID() string
	GetName() string
	Describe() []describe.Section
}

// Matcher is implemented by records that answer to more than their name.
type Matcher interface {
	Matches(name string) bool
}
