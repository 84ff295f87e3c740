// Package session models the per-user interaction state machine gating
// access to the prediction pipeline. A session is owned by exactly one
// interaction and is never shared between users.
package session

import "errors"

// ErrInvalidTransition reports a state change the machine does not allow.
var ErrInvalidTransition = errors.New("invalid session transition")

// State enumerates the reachable screens of the interaction.
type State int

const (
	LoggedOut State = iota
	Registering
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case Registering:
		return "registering"
	case LoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// Session tracks the state of one interactive user.
type Session struct {
	state    State
	username string
}

// New returns a fresh session in the LoggedOut state.
func New() *Session {
	return &Session{state: LoggedOut}
}

// Resume rebuilds a LoggedIn session from a verified token subject.
func Resume(username string) *Session {
	return &Session{state: LoggedIn, username: username}
}

// State reports the current state.
func (s *Session) State() State {
	return s.state
}

// Username returns the bound username; ok is false unless logged in.
func (s *Session) Username() (string, bool) {
	if s.state != LoggedIn {
		return "", false
	}
	return s.username, true
}

// BeginRegistration moves LoggedOut -> Registering.
func (s *Session) BeginRegistration() error {
	if s.state != LoggedOut {
		return ErrInvalidTransition
	}
	s.state = Registering
	return nil
}

// CompleteRegistration moves Registering -> LoggedOut. Registration never
// logs the user in; they must authenticate explicitly.
func (s *Session) CompleteRegistration() error {
	if s.state != Registering {
		return ErrInvalidTransition
	}
	s.state = LoggedOut
	return nil
}

// CancelRegistration moves Registering -> LoggedOut.
func (s *Session) CancelRegistration() error {
	if s.state != Registering {
		return ErrInvalidTransition
	}
	s.state = LoggedOut
	return nil
}

// Login moves LoggedOut -> LoggedIn and binds the username.
func (s *Session) Login(username string) error {
	if s.state != LoggedOut || username == "" {
		return ErrInvalidTransition
	}
	s.state = LoggedIn
	s.username = username
	return nil
}

// Logout moves LoggedIn -> LoggedOut and clears the bound username.
func (s *Session) Logout() error {
	if s.state != LoggedIn {
		return ErrInvalidTransition
	}
	s.state = LoggedOut
	s.username = ""
	return nil
}

// CanPredict reports whether the session may reach the prediction pipeline.
// Only a logged-in session qualifies.
func (s *Session) CanPredict() bool {
	return s.state == LoggedIn
}
