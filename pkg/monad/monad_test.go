package monad

import (
	"strconv"
	"strings"
	"testing"

	"github.com/funvibe/funalg/pkg/laws"
	"github.com/funvibe/funalg/pkg/option"
)

// optionIntBase wires the Option primitives at elements (int, int).
func optionIntBase() Base[option.Option[int], option.Option[int], option.Option[option.Option[int]], int, int] {
	return Base[option.Option[int], option.Option[int], option.Option[option.Option[int]], int, int]{
		Return:     option.Pure[int],
		Wrap:       option.Pure[int],
		Bind:       option.FlatMap[int, int],
		BindNested: option.FlatMap[option.Option[int], int],
	}
}

// optionIntStringBase wires the Option primitives at elements (int, string).
func optionIntStringBase() Base[option.Option[int], option.Option[string], option.Option[option.Option[int]], int, string] {
	return Base[option.Option[int], option.Option[string], option.Option[option.Option[int]], int, string]{
		Return:     option.Pure[int],
		Wrap:       option.Pure[string],
		Bind:       option.FlatMap[int, string],
		BindNested: option.FlatMap[option.Option[int], int],
	}
}

func eqOptInt(a, b option.Option[int]) bool       { return a == b }
func eqOptString(a, b option.Option[string]) bool { return a == b }

func TestDerivedMapOption(t *testing.T) {
	inst := MustDerive(optionIntBase())

	if got := inst.Map(option.Some(5), func(x int) int { return x + 1 }); got != option.Some(6) {
		t.Errorf("map(Some(5), x+1) = %v, want Some(6)", got)
	}
	if got := inst.Map(option.None[int](), func(x int) int { return x + 1 }); got != option.None[int]() {
		t.Errorf("map(None, x+1) = %v, want None", got)
	}

	// map over an empty container must not invoke f; the policy comes from
	// Bind, not from the deriver.
	calls := 0
	inst.Map(option.None[int](), func(x int) int { calls++; return x })
	if calls != 0 {
		t.Errorf("map(None, f) invoked f %d times, want 0", calls)
	}
}

func TestDerivedFlatMapOption(t *testing.T) {
	inst := MustDerive(optionIntBase())
	keepPositive := func(x int) option.Option[int] {
		if x > 0 {
			return option.Some(x)
		}
		return option.None[int]()
	}

	if got := inst.FlatMap(option.Some(5), keepPositive); got != option.Some(5) {
		t.Errorf("flatMap(Some(5), keepPositive) = %v, want Some(5)", got)
	}
	if got := inst.FlatMap(option.Some(-5), keepPositive); got != option.None[int]() {
		t.Errorf("flatMap(Some(-5), keepPositive) = %v, want None", got)
	}

	calls := 0
	got := inst.FlatMap(option.None[int](), func(x int) option.Option[int] {
		calls++
		return option.Some(x)
	})
	if got != option.None[int]() {
		t.Errorf("flatMap(None, f) = %v, want None", got)
	}
	if calls != 0 {
		t.Errorf("flatMap(None, f) invoked f %d times, want 0", calls)
	}
}

func TestDerivedJoinOption(t *testing.T) {
	inst := MustDerive(optionIntBase())

	tests := []struct {
		name string
		in   option.Option[option.Option[int]]
		want option.Option[int]
	}{
		{name: "Some(Some(3))", in: option.Some(option.Some(3)), want: option.Some(3)},
		{name: "Some(None)", in: option.Some(option.None[int]()), want: option.None[int]()},
		{name: "None", in: option.None[option.Option[int]](), want: option.None[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inst.Join(tt.in); got != tt.want {
				t.Errorf("join(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOfAndFlatMapAliases(t *testing.T) {
	inst := MustDerive(optionIntStringBase())

	if got, want := inst.Of(7), inst.Return(7); got != want {
		t.Errorf("of(7) = %v, return(7) = %v, want identical behavior", got, want)
	}

	itoa := func(x int) option.Option[string] { return option.Some(strconv.Itoa(x)) }
	for _, in := range []option.Option[int]{option.Some(42), option.None[int]()} {
		if got, want := inst.FlatMap(in, itoa), inst.Bind(in, itoa); got != want {
			t.Errorf("flatMap(%v) = %v, bind(%v) = %v, want identical behavior", in, got, in, want)
		}
	}
}

func TestMonadLawsOption(t *testing.T) {
	someOdd := func(x int) option.Option[string] {
		if x%2 != 0 {
			return option.Some(strconv.Itoa(x))
		}
		return option.None[string]()
	}
	nonEmpty := func(s string) option.Option[bool] {
		if s == "" {
			return option.None[bool]()
		}
		return option.Some(len(s) > 1)
	}
	xs := []int{-3, 0, 1, 42}
	ts := []option.Option[int]{option.Some(-3), option.Some(0), option.Some(7), option.None[int]()}

	if err := laws.MonadLeftIdentity(eqOptString, option.Pure[int], option.FlatMap[int, string], someOdd, xs); err != nil {
		t.Errorf("%v", err)
	}
	if err := laws.MonadRightIdentity(eqOptInt, option.Pure[int], option.FlatMap[int, int], ts); err != nil {
		t.Errorf("%v", err)
	}
	if err := laws.MonadAssociativity(
		func(a, b option.Option[bool]) bool { return a == b },
		option.FlatMap[int, string],
		option.FlatMap[string, bool],
		option.FlatMap[int, bool],
		someOdd, nonEmpty, ts,
	); err != nil {
		t.Errorf("%v", err)
	}
}

func TestFunctorLawsDerivedMap(t *testing.T) {
	ts := []option.Option[int]{option.Some(5), option.Some(-1), option.None[int]()}

	mapAA := DeriveMap(option.Pure[int], option.FlatMap[int, int])
	if err := laws.FunctorIdentity(eqOptInt, mapAA, ts); err != nil {
		t.Errorf("%v", err)
	}

	mapAB := DeriveMap(option.Pure[string], option.FlatMap[int, string])
	mapBC := DeriveMap(option.Pure[bool], option.FlatMap[string, bool])
	mapAC := DeriveMap(option.Pure[bool], option.FlatMap[int, bool])
	if err := laws.FunctorComposition(
		func(a, b option.Option[bool]) bool { return a == b },
		mapAB, mapBC, mapAC,
		strconv.Itoa,
		func(s string) bool { return len(s) > 1 },
		ts,
	); err != nil {
		t.Errorf("%v", err)
	}
}

func TestJoinBindEquivalence(t *testing.T) {
	ts := []option.Option[int]{option.Some(5), option.Some(0), option.None[int]()}
	someOdd := func(x int) option.Option[string] {
		if x%2 != 0 {
			return option.Some(strconv.Itoa(x))
		}
		return option.None[string]()
	}

	mapNested := DeriveMap(option.Pure[option.Option[string]], option.FlatMap[int, option.Option[string]])
	join := DeriveJoin(option.FlatMap[option.Option[string], string])

	if err := laws.JoinBindEquivalence(eqOptString, mapNested, join, option.FlatMap[int, string], someOdd, ts); err != nil {
		t.Errorf("%v", err)
	}
}

func TestDeriveRejectsIncompleteBase(t *testing.T) {
	type baseT = Base[option.Option[int], option.Option[int], option.Option[option.Option[int]], int, int]

	tests := []struct {
		name    string
		base    baseT
		missing string
	}{
		{name: "empty base", base: baseT{}, missing: "return"},
		{
			name: "missing bindNested",
			base: baseT{
				Return: option.Pure[int],
				Wrap:   option.Pure[int],
				Bind:   option.FlatMap[int, int],
			},
			missing: "bindNested",
		},
		{
			name: "missing wrap",
			base: baseT{
				Return:     option.Pure[int],
				Bind:       option.FlatMap[int, int],
				BindNested: option.FlatMap[option.Option[int], int],
			},
			missing: "wrap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := Derive(tt.base)
			if err == nil {
				t.Fatal("expected a structural error")
			}
			if inst.Map != nil || inst.Join != nil || inst.Bind != nil {
				t.Errorf("a failed derivation must not produce a partial instance")
			}
			if !strings.Contains(err.Error(), "missing required operation '"+tt.missing+"'") {
				t.Errorf("error = %q, want mention of %q", err.Error(), tt.missing)
			}
		})
	}
}

func TestMustDerivePanicsOnIncompleteBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDerive should panic on an incomplete base")
		}
	}()
	MustDerive(Base[option.Option[int], option.Option[int], option.Option[option.Option[int]], int, int]{})
}

func TestDerivationDeterminism(t *testing.T) {
	base := optionIntBase()
	first := MustDerive(base)
	second := MustDerive(base)

	inc := func(x int) int { return x + 1 }
	samples := []option.Option[int]{option.Some(5), option.None[int]()}
	for _, s := range samples {
		if a, b := first.Map(s, inc), second.Map(s, inc); a != b {
			t.Errorf("map(%v) differs between derivations: %v vs %v", s, a, b)
		}
	}
	nested := []option.Option[option.Option[int]]{
		option.Some(option.Some(3)),
		option.Some(option.None[int]()),
		option.None[option.Option[int]](),
	}
	for _, s := range nested {
		if a, b := first.Join(s), second.Join(s); a != b {
			t.Errorf("join(%v) differs between derivations: %v vs %v", s, a, b)
		}
	}
}
