package setup

import (
	"strings"
)

type constructor func(parameters string) (Setup, error)

// Registration order is the order names are listed to the user. Each
// constructor returns an untyped nil Setup on failure.
var registry = []struct {
	name  string
	build constructor
}{
	{"binary", func(p string) (Setup, error) {
		s, err := NewBinary(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
	{"explosion", func(p string) (Setup, error) {
		s, err := NewExplosion(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
	{"shocktube", func(p string) (Setup, error) {
		s, err := NewShocktube(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
	{"collision", func(p string) (Setup, error) {
		s, err := NewCollision(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
	{"sedov", func(p string) (Setup, error) {
		s, err := NewSedov(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	}},
}

// Names lists the registered setups.
func Names() (names []string) {
	for _, r := range registry {
		names = append(names, r.name)
	}
	return
}

// PossibleSetupsInfo is the message shown when no setup was chosen.
func PossibleSetupsInfo() error {
	return &UnknownSetupError{Valid: Names()}
}

// MakeSetup builds the named setup from its parameter string. An unknown
// name yields an *UnknownSetupError, a parameter problem is returned as the
// setup reported it.
func MakeSetup(name, parameters string) (Setup, error) {
	for _, r := range registry {
		if r.name == name {
			return r.build(parameters)
		}
	}
	return nil, &UnknownSetupError{Name: name, Valid: Names()}
}

// MakeSetupFromString splits "name:parameters" at the first colon.
func MakeSetupFromString(setupString string) (Setup, error) {
	name, parameters, _ := strings.Cut(setupString, ":")
	if len(name) == 0 {
		return nil, PossibleSetupsInfo()
	}
	return MakeSetup(name, parameters)
}
