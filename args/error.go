package args

import (
	"fmt"

	"github.com/reusee/fancyip/literals"
	"github.com/reusee/fancyip/tokens"
)

type Error struct {
	Kind     ErrorKind
	Location tokens.Location
}

func (e *Error) Error() string {
	if e.Location == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Kind)
}

func (e *Error) Where() tokens.Location {
	return e.Location
}

func (e *Error) Message() string {
	return e.Kind.String()
}

// ErrorKind is one of UnexpectedToken, BadType or OutOfBound.
type ErrorKind interface {
	String() string
	isErrorKind()
}

// UnexpectedToken reports a grammar violation: a non-literal argument or a bad separator.
type UnexpectedToken struct {
	Text string
}

func (u UnexpectedToken) String() string {
	return fmt.Sprintf("unexpected token %q", u.Text)
}

func (UnexpectedToken) isErrorKind() {}

type BadType struct {
	Given    literals.Kind
	Expected literals.Kind
}

func (b BadType) String() string {
	return fmt.Sprintf("expected %s literal, got %s literal", b.Expected, b.Given)
}

func (BadType) isErrorKind() {}

type OutOfBound struct {
	Type string
}

func (o OutOfBound) String() string {
	return fmt.Sprintf("integer literal out of range for %s", o.Type)
}

func (OutOfBound) isErrorKind() {}
