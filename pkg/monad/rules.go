package monad

// The derivation rule set: each derived operation is a referentially
// transparent function of the Base operations only. Exactly one rule exists
// per operation; Derive and Derive2 share them.

// DeriveMap builds the functorial map from the two primitives:
//
//	Map(t, f) = Bind(t, func(x) { return Wrap(f(x)) })
func DeriveMap[TA, TB, A, B any](wrap func(B) TB, bind func(TA, func(A) TB) TB) func(TA, func(A) B) TB {
	return func(t TA, f func(A) B) TB {
		return bind(t, func(x A) TB {
			return wrap(f(x))
		})
	}
}

// DeriveJoin collapses one level of nesting by binding with the identity
// continuation:
//
//	Join(tt) = Bind(tt, func(x) { return x })
func DeriveJoin[TTA, TA any](bindNested func(TTA, func(TA) TA) TA) func(TTA) TA {
	return func(tt TTA) TA {
		return bindNested(tt, func(x TA) TA { return x })
	}
}
