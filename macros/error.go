package macros

import (
	"fmt"

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

func (e *Error) Unwrap() error {
	if invalid, ok := e.Kind.(InvalidAddress); ok {
		return invalid.Err
	}
	return nil
}

// ErrorKind is one of TooFewArguments, TooManyArguments or InvalidAddress.
type ErrorKind interface {
	String() string
	isErrorKind()
}

type TooFewArguments struct {
	Expected string
}

func (t TooFewArguments) String() string {
	return fmt.Sprintf("too few arguments, expected %s", t.Expected)
}

func (TooFewArguments) isErrorKind() {}

type TooManyArguments struct {
	Given int
	Max   int
}

func (t TooManyArguments) String() string {
	return fmt.Sprintf("too many arguments, got %d, expected at most %d", t.Given, t.Max)
}

func (TooManyArguments) isErrorKind() {}

type InvalidAddress struct {
	Text string
	Want string
	Err  error
}

func (i InvalidAddress) String() string {
	return fmt.Sprintf("invalid %s %q: %v", i.Want, i.Text, i.Err)
}

func (InvalidAddress) isErrorKind() {}
