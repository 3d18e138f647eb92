package tuple

import "fmt"

// Indicates that the constructor of one of the pair fields failed
type ErrConstruction struct {
	field string
	err   error
}

func (m ErrConstruction) Error() string {
	return fmt.Sprintf("construct %s: %v", m.field, m.err)
}

// Field is the name of the field that failed, "first" or "second"
func (m ErrConstruction) Field() string { return m.field }

func (m ErrConstruction) Cause() error { return m.err }

func (m ErrConstruction) Unwrap() error { return m.err }

func NewErrConstruction(field string, err error) ErrConstruction {
	return ErrConstruction{
		field: field,
		err:   err,
	}
}
