// Package laws provides reusable checks for the algebraic laws a Base must
// uphold for derivation to be sound. The derivers cannot verify these laws
// themselves, since a violating Base produces silently wrong derived
// behavior, so a conforming test suite runs these checks over sampled values.
//
// Each check takes the operation instantiations it needs, an equality
// predicate for the compared type, and sample inputs. A nil result means the
// law held on every sample; otherwise the error describes the first
// counterexample.
package laws

import "fmt"

// Eq compares two values of the same type for a law check.
type Eq[T any] func(T, T) bool

// MonadLeftIdentity checks bind(return(x), f) == f(x) for every sample x.
func MonadLeftIdentity[TA, TB, A any](
	eq Eq[TB],
	ret func(A) TA,
	bind func(TA, func(A) TB) TB,
	f func(A) TB,
	xs []A,
) error {
	for _, x := range xs {
		got := bind(ret(x), f)
		want := f(x)
		if !eq(got, want) {
			return fmt.Errorf("monad left identity: bind(return(%v), f) = %v, want f(%v) = %v", x, got, x, want)
		}
	}
	return nil
}

// MonadRightIdentity checks bind(t, return) == t for every sample t. The
// bind argument is the primitive instantiated at B == A.
func MonadRightIdentity[TA, A any](
	eq Eq[TA],
	ret func(A) TA,
	bind func(TA, func(A) TA) TA,
	ts []TA,
) error {
	for _, t := range ts {
		got := bind(t, ret)
		if !eq(got, t) {
			return fmt.Errorf("monad right identity: bind(%v, return) = %v, want %v", t, got, t)
		}
	}
	return nil
}

// MonadAssociativity checks
// bind(bind(t, f), g) == bind(t, func(x) { bind(f(x), g) }) for every
// sample t. The three bind arguments are the primitive at the three
// instantiations the law mentions.
func MonadAssociativity[TA, TB, TC, A, B any](
	eq Eq[TC],
	bindAB func(TA, func(A) TB) TB,
	bindBC func(TB, func(B) TC) TC,
	bindAC func(TA, func(A) TC) TC,
	f func(A) TB,
	g func(B) TC,
	ts []TA,
) error {
	for _, t := range ts {
		left := bindBC(bindAB(t, f), g)
		right := bindAC(t, func(x A) TC { return bindBC(f(x), g) })
		if !eq(left, right) {
			return fmt.Errorf("monad associativity: bind(bind(%v, f), g) = %v, bind(%v, x -> bind(f(x), g)) = %v", t, left, t, right)
		}
	}
	return nil
}

// FunctorIdentity checks map(t, id) == t for every sample t, using the
// derived map at B == A.
func FunctorIdentity[TA, A any](eq Eq[TA], mapAA func(TA, func(A) A) TA, ts []TA) error {
	for _, t := range ts {
		got := mapAA(t, func(x A) A { return x })
		if !eq(got, t) {
			return fmt.Errorf("functor identity: map(%v, id) = %v, want %v", t, got, t)
		}
	}
	return nil
}

// FunctorComposition checks map(map(t, f), g) == map(t, comp(f, g)) for
// every sample t.
func FunctorComposition[TA, TB, TC, A, B, C any](
	eq Eq[TC],
	mapAB func(TA, func(A) B) TB,
	mapBC func(TB, func(B) C) TC,
	mapAC func(TA, func(A) C) TC,
	f func(A) B,
	g func(B) C,
	ts []TA,
) error {
	for _, t := range ts {
		left := mapBC(mapAB(t, f), g)
		right := mapAC(t, func(x A) C { return g(f(x)) })
		if !eq(left, right) {
			return fmt.Errorf("functor composition: map(map(%v, f), g) = %v, map(%v, g.f) = %v", t, left, t, right)
		}
	}
	return nil
}

// JoinBindEquivalence checks join(map(t, f)) == bind(t, f) for every sample
// t. mapNested is the derived map at element type T<B>; join collapses the
// resulting T<T<B>>.
func JoinBindEquivalence[TA, TB, TTB, A any](
	eq Eq[TB],
	mapNested func(TA, func(A) TB) TTB,
	join func(TTB) TB,
	bind func(TA, func(A) TB) TB,
	f func(A) TB,
	ts []TA,
) error {
	for _, t := range ts {
		left := join(mapNested(t, f))
		right := bind(t, f)
		if !eq(left, right) {
			return fmt.Errorf("join/bind equivalence: join(map(%v, f)) = %v, bind(%v, f) = %v", t, left, t, right)
		}
	}
	return nil
}

// AlternativeAssociativity checks
// orElse(orElse(a, b), c) == orElse(a, orElse(b, c)) over the cross product
// of the samples.
func AlternativeAssociativity[TA any](eq Eq[TA], orElse func(TA, TA) TA, samples []TA) error {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left := orElse(orElse(a, b), c)
				right := orElse(a, orElse(b, c))
				if !eq(left, right) {
					return fmt.Errorf("alternative associativity: orElse(orElse(%v, %v), %v) = %v, orElse(%v, orElse(%v, %v)) = %v",
						a, b, c, left, a, b, c, right)
				}
			}
		}
	}
	return nil
}

// AlternativeLeftFavoring checks orElse(a, b) == a for every present a,
// regardless of b. The caller supplies only present/successful values in
// present.
func AlternativeLeftFavoring[TA any](eq Eq[TA], orElse func(TA, TA) TA, present []TA, bs []TA) error {
	for _, a := range present {
		for _, b := range bs {
			got := orElse(a, b)
			if !eq(got, a) {
				return fmt.Errorf("alternative left-favoring: orElse(%v, %v) = %v, want %v", a, b, got, a)
			}
		}
	}
	return nil
}

// AlternativeLeftIdentity checks orElse(empty, b) == b for every sample b,
// where empty is the constructor's neutral element.
func AlternativeLeftIdentity[TA any](eq Eq[TA], orElse func(TA, TA) TA, empty TA, bs []TA) error {
	for _, b := range bs {
		got := orElse(empty, b)
		if !eq(got, b) {
			return fmt.Errorf("alternative left identity: orElse(%v, %v) = %v, want %v", empty, b, got, b)
		}
	}
	return nil
}

// FoldableEmpty checks foldLeft(zero, init, f) == init for the constructor's
// zero-element representative.
func FoldableEmpty[TA, A, Acc any](
	eq Eq[Acc],
	foldLeft func(TA, Acc, func(Acc, A) Acc) Acc,
	zero TA,
	init Acc,
	f func(Acc, A) Acc,
) error {
	got := foldLeft(zero, init, f)
	if !eq(got, init) {
		return fmt.Errorf("foldable empty: foldLeft(%v, %v, f) = %v, want %v", zero, init, got, init)
	}
	return nil
}

// FoldableSingle checks foldLeft(one(x), init, f) == f(init, x) for the
// constructor's canonical one-element representative.
func FoldableSingle[TA, A, Acc any](
	eq Eq[Acc],
	foldLeft func(TA, Acc, func(Acc, A) Acc) Acc,
	one func(A) TA,
	x A,
	init Acc,
	f func(Acc, A) Acc,
) error {
	got := foldLeft(one(x), init, f)
	want := f(init, x)
	if !eq(got, want) {
		return fmt.Errorf("foldable single: foldLeft(one(%v), %v, f) = %v, want %v", x, init, got, want)
	}
	return nil
}
