package signature

import "fmt"

// MissingOpError indicates a Base left a required operation unset.
type MissingOpError struct {
	Interface string
	Arity     int
	Op        Op
}

func (e *MissingOpError) Error() string {
	return fmt.Sprintf("instance %s for arity-%d constructor (kind %s) is missing required operation '%s': %s",
		e.Interface, e.Arity, ForArity(e.Arity), e.Op.Name, e.Op.Shape)
}
