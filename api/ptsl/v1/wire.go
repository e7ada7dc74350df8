package ptslv1

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Envelope types and their binary encoding. One request envelope wraps one
// command; the response envelope carries either a success body or an error
// body, never both. Zero values are omitted on the wire (proto3 semantics).

// RequestHeader correlates one command dispatch. TaskID is reserved for
// future asynchronous correlation and is always empty.
type RequestHeader struct {
	TaskID    string
	SessionID string
	Command   CommandID
	Version   int32
}

// Request is the envelope sent to the host.
type Request struct {
	Header          RequestHeader
	RequestBodyJSON string
}

// ResponseHeader reports the outcome of one command dispatch.
type ResponseHeader struct {
	TaskID   string
	Command  CommandID
	Status   TaskStatus
	Progress int32
}

// Response is the envelope returned by the host.
type Response struct {
	Header            ResponseHeader
	ResponseBodyJSON  string
	ResponseErrorJSON string
}

func appendStringField(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarintField(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendMessageField(b []byte, num protowire.Number, msg []byte) []byte {
	if len(msg) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// MarshalWire encodes the request envelope.
func (r *Request) MarshalWire() []byte {
	var hdr []byte
	hdr = appendStringField(hdr, 1, r.Header.TaskID)
	hdr = appendStringField(hdr, 2, r.Header.SessionID)
	hdr = appendVarintField(hdr, 3, int64(r.Header.Command))
	hdr = appendVarintField(hdr, 4, int64(r.Header.Version))

	var b []byte
	b = appendMessageField(b, 1, hdr)
	b = appendStringField(b, 2, r.RequestBodyJSON)
	return b
}

// UnmarshalWire decodes a request envelope in place.
func (r *Request) UnmarshalWire(data []byte) error {
	*r = Request{}
	return consumeFields(data, "request", func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeFields(field, "request header", func(num protowire.Number, typ protowire.Type, field []byte) error {
				switch num {
				case 1:
					r.Header.TaskID = string(field)
				case 2:
					r.Header.SessionID = string(field)
				case 3:
					r.Header.Command = CommandID(decodeVarint(field))
				case 4:
					r.Header.Version = int32(decodeVarint(field))
				}
				return nil
			})
		case 2:
			r.RequestBodyJSON = string(field)
		}
		return nil
	})
}

// MarshalWire encodes the response envelope.
func (r *Response) MarshalWire() []byte {
	var hdr []byte
	hdr = appendStringField(hdr, 1, r.Header.TaskID)
	hdr = appendVarintField(hdr, 2, int64(r.Header.Command))
	hdr = appendVarintField(hdr, 3, int64(r.Header.Status))
	hdr = appendVarintField(hdr, 4, int64(r.Header.Progress))

	var b []byte
	b = appendMessageField(b, 1, hdr)
	b = appendStringField(b, 2, r.ResponseBodyJSON)
	b = appendStringField(b, 3, r.ResponseErrorJSON)
	return b
}

// UnmarshalWire decodes a response envelope in place.
func (r *Response) UnmarshalWire(data []byte) error {
	*r = Response{}
	return consumeFields(data, "response", func(num protowire.Number, typ protowire.Type, field []byte) error {
		switch num {
		case 1:
			return consumeFields(field, "response header", func(num protowire.Number, typ protowire.Type, field []byte) error {
				switch num {
				case 1:
					r.Header.TaskID = string(field)
				case 2:
					r.Header.Command = CommandID(decodeVarint(field))
				case 3:
					r.Header.Status = TaskStatus(decodeVarint(field))
				case 4:
					r.Header.Progress = int32(decodeVarint(field))
				}
				return nil
			})
		case 2:
			r.ResponseBodyJSON = string(field)
		case 3:
			r.ResponseErrorJSON = string(field)
		}
		return nil
	})
}

// consumeFields walks one message level, handing each field's raw value to
// visit. Bytes fields are handed their contents; varint fields are handed
// the undecoded varint bytes. Unknown fields are skipped.
func consumeFields(data []byte, label string, visit func(protowire.Number, protowire.Type, []byte) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("decode %s envelope: %w", label, protowire.ParseError(n))
		}
		data = data[n:]

		switch typ {
		case protowire.BytesType:
			field, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("decode %s envelope field %d: %w", label, num, protowire.ParseError(n))
			}
			if err := visit(num, typ, field); err != nil {
				return err
			}
			data = data[n:]
		case protowire.VarintType:
			_, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("decode %s envelope field %d: %w", label, num, protowire.ParseError(n))
			}
			if err := visit(num, typ, data[:n]); err != nil {
				return err
			}
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("decode %s envelope field %d: %w", label, num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return nil
}

func decodeVarint(field []byte) uint64 {
	v, n := protowire.ConsumeVarint(field)
	if n < 0 {
		return 0
	}
	return v
}
