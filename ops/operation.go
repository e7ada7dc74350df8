// Package ops defines the command descriptors run by the client. Each
// remote command is one variant implementing the fixed Operation contract;
// extending the protocol means adding a variant, never touching the client.
package ops

import (
	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// Operation describes one command invocation: its id, an optional typed
// request, an optional declared response type, JSON repair hooks for known
// wire irregularities, and delivery callbacks. An Operation only mutates
// its own fields; it must never touch client state. One instance covers
// one run; re-running an instance is undefined.
type Operation interface {
	// CommandID identifies the remote command.
	CommandID() ptslv1.CommandID

	// RequestBody returns the typed request, or nil when the command
	// takes none.
	RequestBody() any

	// NewResponseBody returns a fresh value of the declared response
	// type, or nil when the command declares none.
	NewResponseBody() any

	// RepairRequestJSON patches known request-encoding irregularities
	// before dispatch. Identity by default.
	RepairRequestJSON(body string) string

	// RepairResponseJSON patches known response-encoding irregularities
	// before structural parsing. Identity by default.
	RepairResponseJSON(body string) string

	// OnResponseBody delivers the parsed response. Called only when a
	// body is present and a response type is declared.
	OnResponseBody(body any)

	// OnEmptyResponseBody signals completion without a body.
	OnEmptyResponseBody()

	// RecordStatus stores the response status on the operation.
	RecordStatus(status ptslv1.TaskStatus)
}

// Base supplies the default Operation behavior: no request, no declared
// response, identity repair hooks, no-op deliveries. Variants embed it and
// override what they need.
type Base struct {
	// Status is the task status recorded by the last run.
	Status ptslv1.TaskStatus
}

func (b *Base) RequestBody() any { return nil }

func (b *Base) NewResponseBody() any { return nil }

func (b *Base) RepairRequestJSON(body string) string { return body }

func (b *Base) RepairResponseJSON(body string) string { return body }

func (b *Base) OnResponseBody(body any) {}

func (b *Base) OnEmptyResponseBody() {}

func (b *Base) RecordStatus(status ptslv1.TaskStatus) { b.Status = status }
