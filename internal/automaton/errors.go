package automaton

import "errors"

var (
	// ErrInvalidState reports an initial generation that is empty or holds
	// characters other than '0' and '1'.
	ErrInvalidState = errors.New("initial state must contain only 0 and 1")
	// ErrInvalidRule reports a rule number outside [0,255].
	ErrInvalidRule = errors.New("rule must be in interval 0-255")
	// ErrInvalidEdge reports an unknown edge mode.
	ErrInvalidEdge = errors.New("unknown edge mode")
)
