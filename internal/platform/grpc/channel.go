// Package grpc provides the gRPC channel the client sends envelopes over.
package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// SendMethod is the host's single RPC method.
const SendMethod = "/ptsl.PTSL/SendGrpcRequest"

// Dialer describes the gRPC dial behavior used by helpers.
type Dialer interface {
	DialContext(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)
}

// DialerFunc adapts a dial function to the Dialer interface.
type DialerFunc func(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)

// DialContext implements Dialer for DialerFunc.
func (fn DialerFunc) DialContext(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	return fn(ctx, addr, opts...)
}

// DefaultDialOptions returns the standard dial options for a host channel.
// The channel itself is insecure; trust is established by the PTSL
// application handshake. The OTel handler propagates trace context when a
// TracerProvider is registered.
func DefaultDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithBlock(),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Channel is a synchronous envelope transport over one gRPC connection.
type Channel struct {
	conn *gogrpc.ClientConn
}

// Dial connects a channel to the host address.
func Dial(ctx context.Context, dialer Dialer, addr string, dialTimeout time.Duration, opts ...gogrpc.DialOption) (*Channel, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if dialer == nil {
		dialer = DialerFunc(gogrpc.DialContext)
	}
	if len(opts) == 0 {
		opts = DefaultDialOptions()
	}

	dialCtx := ctx
	if dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}

	conn, err := dialer.DialContext(dialCtx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Channel{conn: conn}, nil
}

// Send dispatches one request envelope and blocks for the response.
func (ch *Channel) Send(ctx context.Context, req *ptslv1.Request) (*ptslv1.Response, error) {
	res := new(ptslv1.Response)
	if err := ch.conn.Invoke(ctx, SendMethod, req, res, gogrpc.ForceCodec(Codec{})); err != nil {
		return nil, err
	}
	return res, nil
}

// Close releases the underlying connection.
func (ch *Channel) Close() error {
	return ch.conn.Close()
}

// Codec marshals envelope types for the wire. The host's stub speaks
// standard proto framing, so the codec advertises the proto name while
// encoding the hand-maintained envelope types.
type Codec struct{}

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *ptslv1.Request:
		return m.MarshalWire(), nil
	case *ptslv1.Response:
		return m.MarshalWire(), nil
	}
	return nil, fmt.Errorf("envelope codec: unsupported message type %T", v)
}

// Unmarshal implements encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case *ptslv1.Request:
		return m.UnmarshalWire(data)
	case *ptslv1.Response:
		return m.UnmarshalWire(data)
	}
	return fmt.Errorf("envelope codec: unsupported message type %T", v)
}

// Name implements encoding.Codec.
func (Codec) Name() string { return "proto" }
