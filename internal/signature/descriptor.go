// Package signature models capability descriptors: the minimal operation set
// one interface requires from a type constructor at a fixed arity.
//
// Operation signatures themselves are enforced statically, by the generic
// field types of each deriver's Base dictionary; a wrong arity or parameter
// binding does not compile. The descriptor covers the part the type system
// cannot see: an operation left unset. Check runs before any derivation and
// a failed check prevents an instance from being produced at all.
package signature

// Op describes one operation of an interface's minimal set.
type Op struct {
	// Name is the operation name as it appears in diagnostics.
	Name string

	// Shape is the language-neutral signature, e.g. "(T<A>, A -> T<B>) -> T<B>".
	Shape string
}

// Descriptor is the minimal operation set for one (interface, arity) pair.
// Exactly one descriptor exists per pair; derivers declare them as package
// variables.
type Descriptor struct {
	Interface string
	Arity     int
	Ops       []Op
}

// Kind returns the constructor kind this descriptor applies to.
func (d Descriptor) Kind() Kind {
	return ForArity(d.Arity)
}

// Check reports the first required operation that present does not cover.
// A nil error means the Base supplies every required operation.
func (d Descriptor) Check(present func(op string) bool) error {
	for _, op := range d.Ops {
		if !present(op.Name) {
			return &MissingOpError{Interface: d.Interface, Arity: d.Arity, Op: op}
		}
	}
	return nil
}
