package domain

import (
	"sync"

	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"go.uber.org/atomic"
)

// Session is the form/result state machine of one visitor:
//
//	Editing -> Calculating -> Result | Editing (with error)
//	Result  -> Editing (reset, all fields cleared)
//
// Inputs and results are replaced wholesale on every transition.
type Session struct {
	ID string

	inProgress atomic.Bool

	mu     sync.Mutex
	state  definition.State
	input  definition.TripInput
	result *definition.TripResult
	err    string
}

func NewSession(id string) *Session {
	return &Session{ID: id, state: definition.StateEditing}
}

// Begin moves an editing session to Calculating. Only one calculation can be in
// flight per session; concurrent submissions get ErrCalculationInProgress.
func (s *Session) Begin(input definition.TripInput) error {
	if !s.inProgress.CAS(false, true) {
		return definition.ErrCalculationInProgress
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != definition.StateEditing {
		s.inProgress.Store(false)
		return definition.ErrInvalidTransition
	}
	s.state = definition.StateCalculating
	s.input = input
	s.result = nil
	s.err = ""
	return nil
}

func (s *Session) Complete(result definition.TripResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != definition.StateCalculating {
		return definition.ErrInvalidTransition
	}
	s.state = definition.StateResult
	s.result = &result
	s.err = ""
	s.inProgress.Store(false)
	return nil
}

// Fail returns a calculating session to Editing, keeping the submitted input
// so the user can correct it.
func (s *Session) Fail(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != definition.StateCalculating {
		return definition.ErrInvalidTransition
	}
	s.state = definition.StateEditing
	s.result = nil
	s.err = message
	s.inProgress.Store(false)
	return nil
}

func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != definition.StateResult {
		return definition.ErrInvalidTransition
	}
	s.state = definition.StateEditing
	s.input = definition.TripInput{}
	s.result = nil
	s.err = ""
	return nil
}

func (s *Session) Snapshot() *definition.Gastimation {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := &definition.Gastimation{
		State: s.state,
		Input: s.input,
		Error: s.err,
	}
	if s.result != nil {
		result := *s.result
		g.Result = &result
	}
	return g
}
