package counter

import (
	"errors"
	"fmt"
)

// The kinds of counter errors, test them with errors.Is
var (
	ErrInvalidName   = errors.New("invalid counter name")
	ErrAlreadyExists = errors.New("counter already exists")
	ErrNotFound      = errors.New("counter does not exist")
)

// Error is the error of an operation on the counter Name
type Error struct {
	Name string
	Err  error
}

func newError(name string, kind error) *Error {
	return &Error{Name: name, Err: kind}
}

func (p *Error) Error() string {
	switch p.Err {
	case ErrInvalidName:
		return fmt.Sprintf("Invalid counter name: %s", p.Name)
	case ErrAlreadyExists:
		return fmt.Sprintf("Counter %s already exists", p.Name)
	case ErrNotFound:
		return fmt.Sprintf("Counter %s does not exist", p.Name)
	}
	return fmt.Sprintf("counter %s: %v", p.Name, p.Err)
}

// Unwrap return the error kind
func (p *Error) Unwrap() error {
	return p.Err
}

// Human impls common.HumanError, the message is safe to be shown to clients
func (p *Error) Human() bool {
	return p != nil
}
