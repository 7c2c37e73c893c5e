// Package handle is the stateful external interface of one game session: a
// Session owns the live board/state/cache/logger and exposes spec's §6
// operations as JSON-in/JSON-out methods, grounded on the teacher's
// engine/play.go interactive-loop wiring (there: one in-process loop reading
// stdin; here: a host-callable handle with the same ownership shape).
package handle

import "fmt"

// ErrorKind classifies a handle-level failure (spec.md §7), a superset of
// rules.ErrorKind since only handle sees snapshot and board-load failures.
type ErrorKind int

const (
	InvalidPlan ErrorKind = iota
	InvalidSnapshot
	BoardInvalid
	Cancelled
	NoProgress
)

// Error is the handle's error type: a Kind plus a host-displayable message.
// Propagation follows spec.md §7: every fallible operation returns an empty
// error string on success and this message on failure, never a panic.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func invalidSnapshot(format string, args ...any) *Error {
	return &Error{Kind: InvalidSnapshot, Msg: fmt.Sprintf(format, args...)}
}

func boardInvalid(format string, args ...any) *Error {
	return &Error{Kind: BoardInvalid, Msg: fmt.Sprintf(format, args...)}
}

func noProgress(format string, args ...any) *Error {
	return &Error{Kind: NoProgress, Msg: fmt.Sprintf(format, args...)}
}
