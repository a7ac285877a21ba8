package sandbox

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when no session row exists for an id.
var ErrSessionNotFound = errors.New("session not found")

// ErrSnapshotNotFound is returned when no snapshot row exists for an id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ProvisionError wraps a backend spawn failure. The session row is left in
// status failed with the message persisted.
type ProvisionError struct {
	SessionID string
	Err       error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to provision sandbox for session %s: %v", e.SessionID, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// NotReadyError is returned when a command targets a session that is not
// ready and could not be auto-reprovisioned.
type NotReadyError struct {
	SessionID string
	Status    string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("sandbox for session %s is not ready (status %s)", e.SessionID, e.Status)
}
