package types

import (
	"errors"
	"fmt"
)

// Sentinel errors, use errors.Is to detect them.
var (
	ErrAccessDenied   = errors.New("access denied")
	ErrUnknownCommand = errors.New("command not found")
	ErrDuplicateVerb  = errors.New("duplicate verb")
)

func NewUnknownCommandError(verb string) error {
	return fmt.Errorf("%w: %v", ErrUnknownCommand, verb)
}

func NewDuplicateVerbError(verb, service string) error {
	return fmt.Errorf("%w %v in service %v", ErrDuplicateVerb, verb, service)
}
