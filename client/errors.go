package client

import (
	"errors"
	"fmt"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// ErrClosed is returned by Run after the client has been closed.
var ErrClosed = errors.New("ptsl: client is closed")

// DialStage describes where client construction failed.
type DialStage string

const (
	// DialStageConnect indicates the transport could not be reached.
	DialStageConnect DialStage = "connect"
	// DialStageReady indicates the host answered the readiness probe
	// with a failure.
	DialStageReady DialStage = "ready"
	// DialStageAuthorize indicates the handshake could not be performed,
	// for example because the credential source was unreadable.
	DialStageAuthorize DialStage = "authorize"
)

// DialError wraps construction failures with a stage indicator. When it is
// returned no client exists and the transport has been released.
type DialError struct {
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "ptsl dial error"
	}
	return fmt.Sprintf("ptsl %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CommandError reports that the host executed a command and explicitly
// failed it. The code is normalized to a single integer before being
// exposed, whatever encoding the wire used.
type CommandError struct {
	Code    ptslv1.CommandErrorType
	Message string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ptsl: command failed: %s", e.Code)
	}
	return fmt.Sprintf("ptsl: command failed: %s: %s", e.Code, e.Message)
}

// Is reports whether target matches this error by code.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	return ok && e.Code == t.Code
}

// ProtocolError reports a response status outside the documented
// {Completed, Failed} set. It is an unrecoverable protocol defect: the
// client can no longer trust request/response correlation and marks itself
// unusable.
type ProtocolError struct {
	Command ptslv1.CommandID
	Status  ptslv1.TaskStatus
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("ptsl: protocol violation: command %s returned unexpected status %s (%d)",
		e.Command, e.Status, int32(e.Status))
}
