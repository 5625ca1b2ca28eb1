package view

import (
	"github.com/pkg/errors"
)

var ErrNotImplemented = errors.New("action not implemented")

// Action is a placeholder control. It renders disabled and Invoke never
// touches the state.
type Action struct {
	Name  string
	Label string
	Icon  string
	Style string
}

func (a Action) Enabled() bool {
	return false
}

func (a Action) Invoke(s *State) error {
	return errors.Wrapf(ErrNotImplemented, "%s", a.Name)
}
