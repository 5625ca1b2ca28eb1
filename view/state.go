package view

import (
	"github.com/pkg/errors"

	"github.com/matematik7/octofit-go/api"
)

type Status int

const (
	Loading Status = iota
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "error"
	}
	return "unknown"
}

var ErrSettled = errors.New("view state already settled")

// State starts in Loading and settles exactly once.
type State struct {
	status  Status
	records []api.Record
	message string
}

func NewState() *State {
	return &State{status: Loading}
}

func (s *State) Resolve(records []api.Record) error {
	if s.status != Loading {
		return ErrSettled
	}
	if records == nil {
		records = []api.Record{}
	}
	s.status = Loaded
	s.records = records
	return nil
}

func (s *State) Fail(err error) error {
	if s.status != Loading {
		return ErrSettled
	}
	s.status = Failed
	s.message = err.Error()
	return nil
}

func (s *State) Status() Status { return s.status }
func (s *State) Records() []api.Record { return s.records }
func (s *State) Message() string { return s.message }
func (s *State) IsLoading() bool { return s.status == Loading }
func (s *State) IsLoaded() bool { return s.status == Loaded }
func (s *State) IsFailed() bool { return s.status == Failed }
func (s *State) Count() int { return len(s.records) }
func (s *State) Empty() bool { return s.status == Loaded && len(s.records) == 0 }
func (s *State) StatusName() string { return s.status.String() }
