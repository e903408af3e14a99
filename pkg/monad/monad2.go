package monad

import (
	"github.com/funvibe/funalg/internal/config"
	"github.com/funvibe/funalg/internal/signature"
)

// Desc2 is the capability descriptor for Monad at arity 2.
var Desc2 = signature.Descriptor{
	Interface: config.MonadName,
	Arity:     2,
	Ops: []signature.Op{
		{Name: config.ReturnOpName, Shape: "A -> T<A, E>"},
		{Name: config.WrapOpName, Shape: "B -> T<B, E> (return at element B)"},
		{Name: config.BindOpName, Shape: "(T<A, E>, A -> T<B, E>) -> T<B, E>"},
		{Name: config.BindNestedOpName, Shape: "(T<T<A, E>, E>, T<A, E> -> T<A, E>) -> T<A, E> (bind at element T<A, E>)"},
	},
}

// Base2 is the two-parameter form of Base, for constructors T<A, E> whose
// second parameter E is held fixed across one derivation, such as a
// Result-like container with a constant failure type. E does not occur in the operation
// signatures, since it is already baked into TA, TB and TTA, but it keeps
// derivations over the same element types apart when their fixed parameter
// differs.
type Base2[TA, TB, TTA, A, B, E any] struct {
	Return     func(A) TA
	Wrap       func(B) TB
	Bind       func(TA, func(A) TB) TB
	BindNested func(TTA, func(TA) TA) TA
}

// Instance2 is the arity-2 derived operation set: the same operations as
// Instance with the second type parameter fixed throughout.
type Instance2[TA, TB, TTA, A, B, E any] struct {
	Return  func(A) TA
	Of      func(A) TA
	Bind    func(TA, func(A) TB) TB
	FlatMap func(TA, func(A) TB) TB
	Map     func(TA, func(A) B) TB
	Join    func(TTA) TA
}

// Derive2 produces the arity-2 Instance for base. The rule set is shared
// with Derive; only the descriptor differs.
func Derive2[TA, TB, TTA, A, B, E any](base Base2[TA, TB, TTA, A, B, E]) (Instance2[TA, TB, TTA, A, B, E], error) {
	if err := Desc2.Check(base.has); err != nil {
		return Instance2[TA, TB, TTA, A, B, E]{}, err
	}
	return Instance2[TA, TB, TTA, A, B, E]{
		Return:  base.Return,
		Of:      base.Return,
		Bind:    base.Bind,
		FlatMap: base.Bind,
		Map:     DeriveMap(base.Wrap, base.Bind),
		Join:    DeriveJoin(base.BindNested),
	}, nil
}

// MustDerive2 is like Derive2 but panics on a structural violation.
func MustDerive2[TA, TB, TTA, A, B, E any](base Base2[TA, TB, TTA, A, B, E]) Instance2[TA, TB, TTA, A, B, E] {
	inst, err := Derive2(base)
	if err != nil {
		panic(err)
	}
	return inst
}

func (b Base2[TA, TB, TTA, A, B, E]) has(op string) bool {
	switch op {
	case config.ReturnOpName:
		return b.Return != nil
	case config.WrapOpName:
		return b.Wrap != nil
	case config.BindOpName:
		return b.Bind != nil
	case config.BindNestedOpName:
		return b.BindNested != nil
	}
	return false
}
