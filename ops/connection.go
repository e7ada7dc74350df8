package ops

import (
	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// HostReadyCheck probes host liveness. The host answers it even on an
// unauthenticated connection.
type HostReadyCheck struct {
	Base
}

func (*HostReadyCheck) CommandID() ptslv1.CommandID { return ptslv1.CommandHostReadyCheck }

// GetPTSLVersion reports the protocol version running on the host.
type GetPTSLVersion struct {
	Base
	Response *ptslv1.GetPTSLVersionResponseBody
}

func (*GetPTSLVersion) CommandID() ptslv1.CommandID { return ptslv1.CommandGetPTSLVersion }

func (*GetPTSLVersion) NewResponseBody() any { return new(ptslv1.GetPTSLVersionResponseBody) }

func (o *GetPTSLVersion) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetPTSLVersionResponseBody)
}

// AuthorizeConnection performs the token handshake.
type AuthorizeConnection struct {
	Base
	Request  *ptslv1.AuthorizeConnectionRequestBody
	Response *ptslv1.AuthorizeConnectionResponseBody
}

func (*AuthorizeConnection) CommandID() ptslv1.CommandID { return ptslv1.CommandAuthorizeConnection }

func (o *AuthorizeConnection) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

func (*AuthorizeConnection) NewResponseBody() any {
	return new(ptslv1.AuthorizeConnectionResponseBody)
}

func (o *AuthorizeConnection) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.AuthorizeConnectionResponseBody)
}

// RegisterConnection performs the registration handshake using company and
// application identifiers instead of a token.
type RegisterConnection struct {
	Base
	Request  *ptslv1.RegisterConnectionRequestBody
	Response *ptslv1.RegisterConnectionResponseBody
}

func (*RegisterConnection) CommandID() ptslv1.CommandID { return ptslv1.CommandRegisterConnection }

func (o *RegisterConnection) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

func (*RegisterConnection) NewResponseBody() any {
	return new(ptslv1.RegisterConnectionResponseBody)
}

func (o *RegisterConnection) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.RegisterConnectionResponseBody)
}
