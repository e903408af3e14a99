// Package monad derives the complete monadic operation set of a type
// constructor from its two hand-written primitives, return and bind.
//
// Go has no higher-kinded types, so a constructor T is handled the way ML
// handles module functors: through a dictionary (struct of funcs) whose type
// parameters name the instantiations one derivation touches. By convention
// TA stands for T<A>, TB for T<B> and TTA for T<T<A>>.
//
// A derivation is a one-time, pure, synchronous specialization. The produced
// Instance holds plain function values; at the call site its operations are
// indistinguishable from hand-written ones.
package monad

import (
	"github.com/funvibe/funalg/internal/config"
	"github.com/funvibe/funalg/internal/signature"
)

// Desc is the capability descriptor for Monad at arity 1.
var Desc = signature.Descriptor{
	Interface: config.MonadName,
	Arity:     1,
	Ops: []signature.Op{
		{Name: config.ReturnOpName, Shape: "A -> T<A>"},
		{Name: config.WrapOpName, Shape: "B -> T<B> (return at element B)"},
		{Name: config.BindOpName, Shape: "(T<A>, A -> T<B>) -> T<B>"},
		{Name: config.BindNestedOpName, Shape: "(T<T<A>>, T<A> -> T<A>) -> T<A> (bind at element T<A>)"},
	},
}

// Base is the minimal operation set a constructor supplies by hand, and the
// only place where type-specific logic lives. The four fields are
// instantiations of just two primitives: return at elements A and B, bind at
// element A and at element T<A>.
//
// The deriver trusts the primitives to satisfy the monad laws:
//
//   - left identity:  Bind(Return(x), f) == f(x)
//   - right identity: Bind(t, Return) == t
//   - associativity:  Bind(Bind(t, f), g) == Bind(t, func(x) { Bind(f(x), g) })
//
// Law violations cannot be detected here; they surface as silently wrong
// derived behavior. The laws package provides checks for test suites.
type Base[TA, TB, TTA, A, B any] struct {
	// Return lifts a value into the constructor: A -> T<A>.
	Return func(A) TA

	// Wrap is Return instantiated at element B: B -> T<B>.
	Wrap func(B) TB

	// Bind sequences a computation through the constructor:
	// (T<A>, A -> T<B>) -> T<B>.
	Bind func(TA, func(A) TB) TB

	// BindNested is Bind instantiated at element T<A>; it powers Join.
	BindNested func(TTA, func(TA) TA) TA
}

// Instance is the complete derived operation set: the primitives plus
// everything expressible in terms of them.
type Instance[TA, TB, TTA, A, B any] struct {
	// Return and Of are the lifted constructor; Of is a naming convenience
	// with identical behavior.
	Return func(A) TA
	Of     func(A) TA

	// Bind and FlatMap sequence computations; FlatMap is the user-facing
	// name with identical behavior.
	Bind    func(TA, func(A) TB) TB
	FlatMap func(TA, func(A) TB) TB

	// Map applies a pure function to the contained elements. When the
	// container carries no values, Bind never invokes its continuation, so
	// Map never invokes f; that policy lives entirely in the Base.
	Map func(TA, func(A) B) TB

	// Join collapses one level of nesting: T<T<A>> -> T<A>.
	Join func(TTA) TA
}

// Derive produces the Instance for base. It fails, producing no Instance at
// all, when base leaves a required operation unset. Derivation is
// deterministic: deriving twice from the same Base yields behaviorally
// indistinguishable Instances.
func Derive[TA, TB, TTA, A, B any](base Base[TA, TB, TTA, A, B]) (Instance[TA, TB, TTA, A, B], error) {
	if err := Desc.Check(base.has); err != nil {
		return Instance[TA, TB, TTA, A, B]{}, err
	}
	return Instance[TA, TB, TTA, A, B]{
		Return:  base.Return,
		Of:      base.Return,
		Bind:    base.Bind,
		FlatMap: base.Bind,
		Map:     DeriveMap(base.Wrap, base.Bind),
		Join:    DeriveJoin(base.BindNested),
	}, nil
}

// MustDerive is like Derive but panics on a structural violation. Use it for
// package-level instances whose Base is statically complete.
func MustDerive[TA, TB, TTA, A, B any](base Base[TA, TB, TTA, A, B]) Instance[TA, TB, TTA, A, B] {
	inst, err := Derive(base)
	if err != nil {
		panic(err)
	}
	return inst
}

func (b Base[TA, TB, TTA, A, B]) has(op string) bool {
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
