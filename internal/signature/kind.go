package signature

import "fmt"

// Kind represents the "type of a type".
// * (Star) is the kind of proper types (int, bool, Option[int]).
// * -> * is the kind of one-parameter constructors (Option).
type Kind interface {
	String() string
	Equal(Kind) bool
}

// KStar represents the kind of a value type (*).
type KStar struct{}

func (k KStar) String() string { return "*" }
func (k KStar) Equal(other Kind) bool {
	_, ok := other.(KStar)
	return ok
}

// KArrow represents a higher-kinded type (k1 -> k2).
type KArrow struct {
	Left  Kind
	Right Kind
}

func (k KArrow) String() string {
	return fmt.Sprintf("(%s -> %s)", k.Left.String(), k.Right.String())
}

func (k KArrow) Equal(other Kind) bool {
	o, ok := other.(KArrow)
	if !ok {
		return false
	}
	return k.Left.Equal(o.Left) && k.Right.Equal(o.Right)
}

var Star Kind = KStar{}

// MakeArrow creates an N-ary, right-associated arrow,
// e.g. MakeArrow(Star, Star, Star) is * -> (* -> *).
func MakeArrow(args ...Kind) Kind {
	if len(args) == 0 {
		return Star
	}
	if len(args) == 1 {
		return args[0]
	}
	return KArrow{Left: args[0], Right: MakeArrow(args[1:]...)}
}

// ForArity returns the kind of a container taking the given number of type
// parameters: 1 yields (* -> *), 2 yields (* -> (* -> *)).
func ForArity(arity int) Kind {
	if arity < 1 {
		return Star
	}
	args := make([]Kind, arity+1)
	for i := range args {
		args[i] = Star
	}
	return MakeArrow(args...)
}
