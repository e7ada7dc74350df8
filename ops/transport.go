package ops

import (
	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// GetTransportState reads the current transport state.
type GetTransportState struct {
	Base
	Response *ptslv1.GetTransportStateResponseBody
}

func (*GetTransportState) CommandID() ptslv1.CommandID { return ptslv1.CommandGetTransportState }

func (*GetTransportState) NewResponseBody() any {
	return new(ptslv1.GetTransportStateResponseBody)
}

func (o *GetTransportState) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetTransportStateResponseBody)
}

// GetTransportArmed reports whether the transport is record-armed.
type GetTransportArmed struct {
	Base
	Response *ptslv1.GetTransportArmedResponseBody
}

func (*GetTransportArmed) CommandID() ptslv1.CommandID { return ptslv1.CommandGetTransportArmed }

func (*GetTransportArmed) NewResponseBody() any {
	return new(ptslv1.GetTransportArmedResponseBody)
}

func (o *GetTransportArmed) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetTransportArmedResponseBody)
}

// GetPlaybackMode reads the active playback mode flags.
type GetPlaybackMode struct {
	Base
	Response *ptslv1.GetPlaybackModeResponseBody
}

func (*GetPlaybackMode) CommandID() ptslv1.CommandID { return ptslv1.CommandGetPlaybackMode }

func (*GetPlaybackMode) NewResponseBody() any {
	return new(ptslv1.GetPlaybackModeResponseBody)
}

func (o *GetPlaybackMode) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetPlaybackModeResponseBody)
}

// SetPlaybackMode sets the playback mode.
type SetPlaybackMode struct {
	Base
	Request *ptslv1.SetPlaybackModeRequestBody
}

func (*SetPlaybackMode) CommandID() ptslv1.CommandID { return ptslv1.CommandSetPlaybackMode }

func (o *SetPlaybackMode) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// GetRecordMode reads the record mode.
type GetRecordMode struct {
	Base
	Response *ptslv1.GetRecordModeResponseBody
}

func (*GetRecordMode) CommandID() ptslv1.CommandID { return ptslv1.CommandGetRecordMode }

func (*GetRecordMode) NewResponseBody() any {
	return new(ptslv1.GetRecordModeResponseBody)
}

func (o *GetRecordMode) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetRecordModeResponseBody)
}

// SetRecordMode sets the record mode, optionally arming the transport.
type SetRecordMode struct {
	Base
	Request *ptslv1.SetRecordModeRequestBody
}

func (*SetRecordMode) CommandID() ptslv1.CommandID { return ptslv1.CommandSetRecordMode }

func (o *SetRecordMode) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// TogglePlayState toggles between playing and stopped.
type TogglePlayState struct {
	Base
}

func (*TogglePlayState) CommandID() ptslv1.CommandID { return ptslv1.CommandTogglePlayState }

// ToggleRecordEnable toggles record enable on the focused track.
type ToggleRecordEnable struct {
	Base
}

func (*ToggleRecordEnable) CommandID() ptslv1.CommandID { return ptslv1.CommandToggleRecordEnable }

// PlayHalfSpeed plays at half speed.
type PlayHalfSpeed struct {
	Base
}

func (*PlayHalfSpeed) CommandID() ptslv1.CommandID { return ptslv1.CommandPlayHalfSpeed }

// RecordHalfSpeed records at half speed.
type RecordHalfSpeed struct {
	Base
}

func (*RecordHalfSpeed) CommandID() ptslv1.CommandID { return ptslv1.CommandRecordHalfSpeed }
