package setup

import (
	"errors"
	"strings"
)

// ErrInvalidSetup is wrapped by every error returned while building a setup.
var ErrInvalidSetup = errors.New("invalid setup")

// UnknownSetupError is returned for a scenario name that is not registered.
// Its message doubles as the list of choices shown to the user.
type UnknownSetupError struct {
	Name  string
	Valid []string
}

func (e *UnknownSetupError) Error() string {
	var b strings.Builder
	if len(e.Name) != 0 {
		b.WriteString("unknown setup " + e.Name + "\n")
	}
	b.WriteString("specify setup:\n")
	for _, name := range e.Valid {
		b.WriteString("    " + name + "\n")
	}
	return b.String()
}

func (e *UnknownSetupError) Unwrap() error {
	return ErrInvalidSetup
}
