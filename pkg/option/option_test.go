package option

import "testing"

func TestAccessors(t *testing.T) {
	some := Some(42)
	none := None[int]()

	if !some.IsSome() || some.IsNone() {
		t.Errorf("Some(42) should be Some")
	}
	if none.IsSome() || !none.IsNone() {
		t.Errorf("None should be None")
	}
	if got := some.Unwrap(); got != 42 {
		t.Errorf("unwrap(Some(42)) = %d, want 42", got)
	}
	if got := some.UnwrapOr(7); got != 42 {
		t.Errorf("unwrapOr(Some(42), 7) = %d, want 42", got)
	}
	if got := none.UnwrapOr(7); got != 7 {
		t.Errorf("unwrapOr(None, 7) = %d, want 7", got)
	}
	if got := none.UnwrapOrElse(func() int { return 9 }); got != 9 {
		t.Errorf("unwrapOrElse(None, f) = %d, want 9", got)
	}
	if got := some.UnwrapOrElse(func() int { return 9 }); got != 42 {
		t.Errorf("unwrapOrElse(Some(42), f) = %d, want 42", got)
	}
}

func TestUnwrapNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unwrap on None should panic")
		}
	}()
	None[int]().Unwrap()
}

func TestEqual(t *testing.T) {
	if !Equal(Some(1), Some(1)) || !Equal(None[int](), None[int]()) {
		t.Error("equal values should compare equal")
	}
	if Equal(Some(1), Some(2)) || Equal(Some(1), None[int]()) {
		t.Error("distinct values should not compare equal")
	}
}

func TestPrimitives(t *testing.T) {
	if got := Pure(3); got != Some(3) {
		t.Errorf("pure(3) = %v, want Some(3)", got)
	}

	double := func(x int) Option[int] { return Some(x * 2) }
	if got := FlatMap(Some(3), double); got != Some(6) {
		t.Errorf("flatMap(Some(3), double) = %v, want Some(6)", got)
	}
	if got := FlatMap(None[int](), double); got != None[int]() {
		t.Errorf("flatMap(None, double) = %v, want None", got)
	}

	if got := OrElse(None[int](), Some(4)); got != Some(4) {
		t.Errorf("orElse(None, Some(4)) = %v, want Some(4)", got)
	}
	if got := OrElse(Some(1), Some(4)); got != Some(1) {
		t.Errorf("orElse(Some(1), Some(4)) = %v, want Some(1)", got)
	}

	add := func(acc, x int) int { return acc + x }
	if got := FoldLeft(Some(5), 1, add); got != 6 {
		t.Errorf("foldLeft(Some(5), 1, +) = %d, want 6", got)
	}
	if got := FoldLeft(None[int](), 1, add); got != 1 {
		t.Errorf("foldLeft(None, 1, +) = %d, want 1", got)
	}
}
