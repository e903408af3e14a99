// Package alternative derives the Alternative instance of a type constructor
// from its single primitive, orElse.
//
// OrElse(a, b) must return a when a carries a usable value and fall back to
// b otherwise, generalizing short-circuiting boolean or. What counts as
// usable is entirely the constructor's policy; the deriver only validates
// the operation's presence and re-exports it unchanged, since orElse is both
// the minimal and the complete public surface.
package alternative

import (
	"github.com/funvibe/funalg/internal/config"
	"github.com/funvibe/funalg/internal/signature"
)

// Desc is the capability descriptor for Alternative at arity 1.
var Desc = signature.Descriptor{
	Interface: config.AlternativeName,
	Arity:     1,
	Ops: []signature.Op{
		{Name: config.OrElseOpName, Shape: "(T<A>, T<A>) -> T<A>"},
	},
}

// Base is the minimal operation set.
//
// Expected laws, upheld by the Base and checkable via the laws package:
//
//   - associativity: OrElse(OrElse(a, b), c) == OrElse(a, OrElse(b, c))
//   - left identity: OrElse(empty, b) == b, where the constructor defines an
//     empty value
type Base[TA any] struct {
	// OrElse chooses the first usable operand: (T<A>, T<A>) -> T<A>.
	OrElse func(TA, TA) TA
}

// Instance is the derived operation set. It equals the Base.
type Instance[TA any] struct {
	OrElse func(TA, TA) TA
}

// Derive validates base and re-exports its operation as the Instance.
func Derive[TA any](base Base[TA]) (Instance[TA], error) {
	if err := Desc.Check(base.has); err != nil {
		return Instance[TA]{}, err
	}
	return Instance[TA]{OrElse: base.OrElse}, nil
}

// MustDerive is like Derive but panics on a structural violation.
func MustDerive[TA any](base Base[TA]) Instance[TA] {
	inst, err := Derive(base)
	if err != nil {
		panic(err)
	}
	return inst
}

func (b Base[TA]) has(op string) bool {
	return op == config.OrElseOpName && b.OrElse != nil
}
