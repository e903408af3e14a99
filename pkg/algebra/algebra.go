// Package algebra is the facade over the three derivers. It re-exports
// their Base and Instance types and derivation entry points under one
// namespace, so a client can discover and apply any of them without knowing
// their individual packages, and provides the optional write-once Registry
// for derived instances.
package algebra

import (
	"github.com/funvibe/funalg/pkg/alternative"
	"github.com/funvibe/funalg/pkg/foldable"
	"github.com/funvibe/funalg/pkg/monad"
)

// Monad, arity 1. TA stands for T<A>, TB for T<B>, TTA for T<T<A>>.
type (
	MonadBase[TA, TB, TTA, A, B any]     = monad.Base[TA, TB, TTA, A, B]
	MonadInstance[TA, TB, TTA, A, B any] = monad.Instance[TA, TB, TTA, A, B]
)

// Monad, arity 2: the second type parameter E is held fixed per derivation.
type (
	MonadBase2[TA, TB, TTA, A, B, E any]     = monad.Base2[TA, TB, TTA, A, B, E]
	MonadInstance2[TA, TB, TTA, A, B, E any] = monad.Instance2[TA, TB, TTA, A, B, E]
)

// Alternative, arity 1.
type (
	AlternativeBase[TA any]     = alternative.Base[TA]
	AlternativeInstance[TA any] = alternative.Instance[TA]
)

// Foldable, arity 1 and 2.
type (
	FoldableBase[TA, A, Acc any]         = foldable.Base[TA, A, Acc]
	FoldableInstance[TA, A, Acc any]     = foldable.Instance[TA, A, Acc]
	FoldableBase2[TA, A, Acc, E any]     = foldable.Base2[TA, A, Acc, E]
	FoldableInstance2[TA, A, Acc, E any] = foldable.Instance2[TA, A, Acc, E]
)

// DeriveMonad derives the arity-1 Monad instance for base.
func DeriveMonad[TA, TB, TTA, A, B any](base MonadBase[TA, TB, TTA, A, B]) (MonadInstance[TA, TB, TTA, A, B], error) {
	return monad.Derive(base)
}

// MustDeriveMonad is like DeriveMonad but panics on a structural violation.
func MustDeriveMonad[TA, TB, TTA, A, B any](base MonadBase[TA, TB, TTA, A, B]) MonadInstance[TA, TB, TTA, A, B] {
	return monad.MustDerive(base)
}

// DeriveMonad2 derives the arity-2 Monad instance for base.
func DeriveMonad2[TA, TB, TTA, A, B, E any](base MonadBase2[TA, TB, TTA, A, B, E]) (MonadInstance2[TA, TB, TTA, A, B, E], error) {
	return monad.Derive2(base)
}

// MustDeriveMonad2 is like DeriveMonad2 but panics on a structural violation.
func MustDeriveMonad2[TA, TB, TTA, A, B, E any](base MonadBase2[TA, TB, TTA, A, B, E]) MonadInstance2[TA, TB, TTA, A, B, E] {
	return monad.MustDerive2(base)
}

// DeriveAlternative derives the Alternative instance for base.
func DeriveAlternative[TA any](base AlternativeBase[TA]) (AlternativeInstance[TA], error) {
	return alternative.Derive(base)
}

// MustDeriveAlternative is like DeriveAlternative but panics on a structural
// violation.
func MustDeriveAlternative[TA any](base AlternativeBase[TA]) AlternativeInstance[TA] {
	return alternative.MustDerive(base)
}

// DeriveFoldable derives the arity-1 Foldable instance for base.
func DeriveFoldable[TA, A, Acc any](base FoldableBase[TA, A, Acc]) (FoldableInstance[TA, A, Acc], error) {
	return foldable.Derive(base)
}

// MustDeriveFoldable is like DeriveFoldable but panics on a structural
// violation.
func MustDeriveFoldable[TA, A, Acc any](base FoldableBase[TA, A, Acc]) FoldableInstance[TA, A, Acc] {
	return foldable.MustDerive(base)
}

// DeriveFoldable2 derives the arity-2 Foldable instance for base.
func DeriveFoldable2[TA, A, Acc, E any](base FoldableBase2[TA, A, Acc, E]) (FoldableInstance2[TA, A, Acc, E], error) {
	return foldable.Derive2(base)
}

// MustDeriveFoldable2 is like DeriveFoldable2 but panics on a structural
// violation.
func MustDeriveFoldable2[TA, A, Acc, E any](base FoldableBase2[TA, A, Acc, E]) FoldableInstance2[TA, A, Acc, E] {
	return foldable.MustDerive2(base)
}
