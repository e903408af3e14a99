// Package foldable derives the Foldable instance of a type constructor from
// its single primitive, foldLeft.
//
// The Base must uphold: for a container holding zero elements,
// FoldLeft(t, init, f) == init; for a container holding exactly one element
// x, FoldLeft(t, init, f) == f(init, x). For sum-typed containers the
// deriver does not impose which branch counts as foldable; that is a
// per-type policy documented at the Base (Result, for instance, folds only
// its Ok branch).
//
// Richer derived operations (foldRight, toList, count) are a future
// extension, deliberately not part of this surface.
package foldable

import (
	"github.com/funvibe/funalg/internal/config"
	"github.com/funvibe/funalg/internal/signature"
)

// Desc is the capability descriptor for Foldable at arity 1.
var Desc = signature.Descriptor{
	Interface: config.FoldableName,
	Arity:     1,
	Ops: []signature.Op{
		{Name: config.FoldLeftOpName, Shape: "(T<A>, Acc, (Acc, A) -> Acc) -> Acc"},
	},
}

// Base is the minimal operation set, instantiated at element A and
// accumulator Acc.
type Base[TA, A, Acc any] struct {
	// FoldLeft accumulates over the container's elements left to right.
	FoldLeft func(TA, Acc, func(Acc, A) Acc) Acc
}

// Instance is the derived operation set. It equals the Base.
type Instance[TA, A, Acc any] struct {
	FoldLeft func(TA, Acc, func(Acc, A) Acc) Acc
}

// Derive validates base and re-exports its operation as the Instance.
func Derive[TA, A, Acc any](base Base[TA, A, Acc]) (Instance[TA, A, Acc], error) {
	if err := Desc.Check(base.has); err != nil {
		return Instance[TA, A, Acc]{}, err
	}
	return Instance[TA, A, Acc]{FoldLeft: base.FoldLeft}, nil
}

// MustDerive is like Derive but panics on a structural violation.
func MustDerive[TA, A, Acc any](base Base[TA, A, Acc]) Instance[TA, A, Acc] {
	inst, err := Derive(base)
	if err != nil {
		panic(err)
	}
	return inst
}

func (b Base[TA, A, Acc]) has(op string) bool {
	return op == config.FoldLeftOpName && b.FoldLeft != nil
}
