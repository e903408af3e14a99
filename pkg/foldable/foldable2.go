package foldable

import (
	"github.com/funvibe/funalg/internal/config"
	"github.com/funvibe/funalg/internal/signature"
)

// Desc2 is the capability descriptor for Foldable at arity 2.
var Desc2 = signature.Descriptor{
	Interface: config.FoldableName,
	Arity:     2,
	Ops: []signature.Op{
		{Name: config.FoldLeftOpName, Shape: "(T<A, E>, Acc, (Acc, A) -> Acc) -> Acc"},
	},
}

// Base2 is the two-parameter form of Base, for constructors T<A, E> whose
// second parameter E is held fixed across one derivation. As with monad
// dictionaries, E is already baked into TA and only pins the derivation's
// identity.
type Base2[TA, A, Acc, E any] struct {
	FoldLeft func(TA, Acc, func(Acc, A) Acc) Acc
}

// Instance2 is the arity-2 derived operation set. It equals the Base.
type Instance2[TA, A, Acc, E any] struct {
	FoldLeft func(TA, Acc, func(Acc, A) Acc) Acc
}

// Derive2 validates base and re-exports its operation as the Instance.
func Derive2[TA, A, Acc, E any](base Base2[TA, A, Acc, E]) (Instance2[TA, A, Acc, E], error) {
	if err := Desc2.Check(base.has); err != nil {
		return Instance2[TA, A, Acc, E]{}, err
	}
	return Instance2[TA, A, Acc, E]{FoldLeft: base.FoldLeft}, nil
}

// MustDerive2 is like Derive2 but panics on a structural violation.
func MustDerive2[TA, A, Acc, E any](base Base2[TA, A, Acc, E]) Instance2[TA, A, Acc, E] {
	inst, err := Derive2(base)
	if err != nil {
		panic(err)
	}
	return inst
}

func (b Base2[TA, A, Acc, E]) has(op string) bool {
	return op == config.FoldLeftOpName && b.FoldLeft != nil
}
