package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// hostServer scripts the single RPC method of a fake host.
type hostServer struct {
	handle func(*ptslv1.Request) (*ptslv1.Response, error)
}

func sendHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(ptslv1.Request)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(*hostServer).handle(req)
}

var hostServiceDesc = gogrpc.ServiceDesc{
	ServiceName: "ptsl.PTSL",
	HandlerType: (*any)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "SendGrpcRequest", Handler: sendHandler},
	},
}

// startHost serves a scripted host on a loopback port and returns its
// address.
func startHost(t *testing.T, handle func(*ptslv1.Request) (*ptslv1.Response, error)) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := gogrpc.NewServer(gogrpc.ForceServerCodec(Codec{}))
	srv.RegisterService(&hostServiceDesc, &hostServer{handle: handle})
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func TestChannelSendRoundTrip(t *testing.T) {
	var got *ptslv1.Request
	addr := startHost(t, func(req *ptslv1.Request) (*ptslv1.Response, error) {
		got = req
		return &ptslv1.Response{
			Header: ptslv1.ResponseHeader{
				Command: req.Header.Command,
				Status:  ptslv1.StatusCompleted,
			},
			ResponseBodyJSON: `{"session_name":"demo"}`,
		}, nil
	})

	ch, err := Dial(context.Background(), nil, addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ch.Close()

	res, err := ch.Send(context.Background(), &ptslv1.Request{
		Header: ptslv1.RequestHeader{
			SessionID: "sess-1",
			Command:   ptslv1.CommandGetSessionName,
			Version:   ptslv1.ProtocolVersion,
		},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if got == nil || got.Header.SessionID != "sess-1" || got.Header.Command != ptslv1.CommandGetSessionName {
		t.Fatalf("host saw wrong request: %+v", got)
	}
	if res.Header.Status != ptslv1.StatusCompleted {
		t.Fatalf("unexpected status %v", res.Header.Status)
	}
	if res.ResponseBodyJSON != `{"session_name":"demo"}` {
		t.Fatalf("unexpected body %q", res.ResponseBodyJSON)
	}
}

func TestChannelSendCarriesErrorBody(t *testing.T) {
	addr := startHost(t, func(req *ptslv1.Request) (*ptslv1.Response, error) {
		return &ptslv1.Response{
			Header: ptslv1.ResponseHeader{
				Command: req.Header.Command,
				Status:  ptslv1.StatusFailed,
			},
			ResponseErrorJSON: `{"command_error_type":7,"message":"busy"}`,
		}, nil
	})

	ch, err := Dial(context.Background(), nil, addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ch.Close()

	res, err := ch.Send(context.Background(), &ptslv1.Request{
		Header: ptslv1.RequestHeader{Command: ptslv1.CommandSaveSession, Version: ptslv1.ProtocolVersion},
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if res.Header.Status != ptslv1.StatusFailed {
		t.Fatalf("unexpected status %v", res.Header.Status)
	}
	if res.ResponseErrorJSON != `{"command_error_type":7,"message":"busy"}` {
		t.Fatalf("unexpected error body %q", res.ResponseErrorJSON)
	}
}

func TestDialTimesOutAgainstDeadAddress(t *testing.T) {
	// Reserved TEST-NET-1 address; nothing answers.
	_, err := Dial(context.Background(), nil, "192.0.2.1:31416", 200*time.Millisecond)
	if err == nil {
		t.Fatal("expected dial timeout")
	}
}

func TestDialUsesInjectedDialer(t *testing.T) {
	var dialed string
	addr := startHost(t, func(req *ptslv1.Request) (*ptslv1.Response, error) {
		return &ptslv1.Response{Header: ptslv1.ResponseHeader{Status: ptslv1.StatusCompleted}}, nil
	})

	dialer := DialerFunc(func(ctx context.Context, target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		dialed = target
		return gogrpc.DialContext(ctx, target, opts...)
	})

	ch, err := Dial(context.Background(), dialer, addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ch.Close()

	if dialed != addr {
		t.Fatalf("expected dialer to receive %q, got %q", addr, dialed)
	}
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	if _, err := (Codec{}).Marshal("not an envelope"); err == nil {
		t.Fatal("expected marshal error")
	}
	if err := (Codec{}).Unmarshal(nil, 42); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
