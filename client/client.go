// Package client implements the PTSL protocol discipline: session
// lifecycle, per-command dispatch, status classification, and defensive
// normalization of the semi-structured JSON payloads the host exchanges.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
	platformgrpc "github.com/louisbranch/ptsl/internal/platform/grpc"
	"github.com/louisbranch/ptsl/ops"
)

// DefaultAddress is the host's default listen address.
const DefaultAddress = "localhost:31416"

// Transport sends one request envelope and blocks for its response. It is
// the client's sole collaborator for I/O; trust is established by the
// application handshake, not by the channel.
type Transport interface {
	Send(ctx context.Context, req *ptslv1.Request) (*ptslv1.Response, error)
	Close() error
}

// Config carries constructor-time settings. Exactly one credential mode is
// used: TokenFile selects the token handshake, otherwise CompanyName and
// ApplicationName select the registration handshake.
type Config struct {
	// Address of the host; DefaultAddress when empty. Used by Dial only.
	Address string

	// TokenFile is the path to a plain API token.
	TokenFile string

	// CompanyName and ApplicationName identify the connecting
	// application for the registration handshake.
	CompanyName     string
	ApplicationName string

	// Auditing enables the command transcript; AuditSink receives it
	// (stderr when nil).
	Auditing  bool
	AuditSink io.Writer

	// DialTimeout bounds the initial connection attempt. Used by Dial
	// only; zero means no bound beyond the caller's context.
	DialTimeout time.Duration
}

// Client runs commands against one host session. It is single-threaded by
// design: one in-flight command per session, no internal scheduling, no
// locking needed because no concurrent access is possible.
type Client struct {
	transport Transport
	sessionID string
	auditor   *auditor
	closed    bool
}

// Dial opens a channel to the host and establishes a client over it. Any
// construction failure closes the channel; no half-open client is ever
// returned.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	addr := cfg.Address
	if addr == "" {
		addr = DefaultAddress
	}
	ch, err := platformgrpc.Dial(ctx, nil, addr, cfg.DialTimeout, platformgrpc.DefaultDialOptions()...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}
	return Connect(ctx, ch, cfg)
}

// Connect establishes a client over an existing transport: readiness probe
// first, then the handshake selected by cfg. On failure the transport is
// closed and a staged *DialError is returned. A denied handshake is not a
// failure: the message is logged, the session stays unauthenticated, and
// the host rejects later commands itself.
func Connect(ctx context.Context, transport Transport, cfg Config) (*Client, error) {
	c := &Client{
		transport: transport,
		auditor:   newAuditor(cfg.Auditing, cfg.AuditSink),
	}
	if err := c.checkHostReady(ctx); err != nil {
		_ = transport.Close()
		return nil, err
	}
	if err := c.authenticate(ctx, cfg); err != nil {
		_ = transport.Close()
		return nil, err
	}
	return c, nil
}

// SessionID returns the current session token, empty until a successful
// handshake and after Close.
func (c *Client) SessionID() string {
	return c.sessionID
}

// CommandSequence returns the transcript sequence number of the next
// command.
func (c *Client) CommandSequence() int {
	return c.auditor.commandSN
}

// Run executes one operation synchronously. On success the result lives on
// the operation; a host-reported failure is returned as *CommandError. A
// transport failure or a protocol-invariant violation closes the client.
func (c *Client) Run(ctx context.Context, op ops.Operation) error {
	if c.closed {
		return ErrClosed
	}

	c.auditor.runCalled(op.CommandID())

	body, err := c.requestJSON(op)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op.CommandID(), err)
	}

	res, err := c.send(ctx, op.CommandID(), body)
	if err != nil {
		_ = c.Close()
		return err
	}
	op.RecordStatus(res.Header.Status)

	switch res.Header.Status {
	case ptslv1.StatusFailed:
		return c.commandError(res.ResponseErrorJSON)
	case ptslv1.StatusCompleted:
		if err := c.deliverResponse(op, res); err != nil {
			return err
		}
	default:
		_ = c.Close()
		return &ProtocolError{Command: op.CommandID(), Status: res.Header.Status}
	}

	c.auditor.runReturning()
	return nil
}

// Close releases the transport and clears the session. Idempotent; Run
// fails fast afterwards.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.sessionID = ""
	return c.transport.Close()
}

// requestJSON marshals the typed request to canonical JSON. Default-valued
// fields stay present and names are kept verbatim because the host is
// strict about field presence, not merely type. The repair hook runs even
// on an empty body so its audit trail is complete.
func (c *Client) requestJSON(op ops.Operation) (string, error) {
	var body string
	if req := op.RequestBody(); req != nil {
		raw, err := json.Marshal(req)
		if err != nil {
			return "", err
		}
		body = string(raw)
	}
	c.auditor.requestJSONBeforeRepair(body)
	body = op.RepairRequestJSON(body)
	c.auditor.requestJSONAfterRepair(body)
	return body, nil
}

// send performs the single blocking transport call. No timeout and no
// retry at this layer; retry policy belongs to the caller.
func (c *Client) send(ctx context.Context, cmd ptslv1.CommandID, body string) (*ptslv1.Response, error) {
	req := &ptslv1.Request{
		Header: ptslv1.RequestHeader{
			TaskID:    "",
			SessionID: c.sessionID,
			Command:   cmd,
			Version:   ptslv1.ProtocolVersion,
		},
		RequestBodyJSON: body,
	}
	res, err := c.transport.Send(ctx, req)
	if err != nil {
		if status.Code(err) == codes.Unavailable {
			return nil, fmt.Errorf("ptsl: host unavailable, the host application may not be running: %w", err)
		}
		return nil, fmt.Errorf("ptsl: send %s: %w", cmd, err)
	}
	return res, nil
}

func (c *Client) deliverResponse(op ops.Operation, res *ptslv1.Response) error {
	target := op.NewResponseBody()
	if len(res.ResponseBodyJSON) > 0 && target != nil {
		c.auditor.responseJSONBeforeRepair(res.ResponseBodyJSON)
		clean := op.RepairResponseJSON(res.ResponseBodyJSON)
		c.auditor.responseJSONAfterRepair(clean)
		if err := json.Unmarshal([]byte(clean), target); err != nil {
			return fmt.Errorf("parse %s response body: %w", op.CommandID(), err)
		}
		op.OnResponseBody(target)
		return nil
	}
	op.OnEmptyResponseBody()
	c.auditor.responseWasEmpty()
	return nil
}

// commandError normalizes and parses a failure body. The wire encodes
// command_error_type as an integer, a numeric string, or a symbolic name;
// anything unrecognized falls back to PT_UnknownError.
func (c *Client) commandError(errorJSON string) error {
	normalized := normalizeCommandErrorJSON(errorJSON)
	var wire ptslv1.CommandError
	if err := json.Unmarshal([]byte(normalized), &wire); err != nil {
		return fmt.Errorf("parse command error body %q: %w", errorJSON, err)
	}
	return &CommandError{Code: wire.CommandErrorType, Message: wire.Message}
}

func normalizeCommandErrorJSON(body string) string {
	v := gjson.Get(body, "command_error_type")
	if v.Type != gjson.String {
		return body
	}

	code := int64(ptslv1.PT_UnknownError)
	if n, err := strconv.ParseInt(v.Str, 10, 32); err == nil {
		code = n
	} else if resolved, ok := ptslv1.CommandErrorTypeValue(v.Str); ok {
		code = int64(resolved)
	}

	patched, err := sjson.Set(body, "command_error_type", code)
	if err != nil {
		return body
	}
	return patched
}
