package ops

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// CreateSession creates a new session on the host.
type CreateSession struct {
	Base
	Request *ptslv1.CreateSessionRequestBody
}

func (*CreateSession) CommandID() ptslv1.CommandID { return ptslv1.CommandCreateSession }

func (o *CreateSession) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// RepairRequestJSON rewrites the format enums as bare ordinals. The host
// rejects the symbolic names in this direction even though it emits them
// itself in responses.
func (o *CreateSession) RepairRequestJSON(body string) string {
	for field, resolve := range createSessionOrdinalFields {
		v := gjson.Get(body, field)
		if v.Type != gjson.String {
			continue
		}
		ordinal, ok := resolve(v.Str)
		if !ok {
			continue
		}
		patched, err := sjson.Set(body, field, ordinal)
		if err != nil {
			continue
		}
		body = patched
	}
	return body
}

var createSessionOrdinalFields = map[string]func(string) (int32, bool){
	"file_type": func(name string) (int32, bool) {
		v, ok := ptslv1.SessionAudioFormatValue(name)
		return int32(v), ok
	},
	"sample_rate": func(name string) (int32, bool) {
		v, ok := ptslv1.SampleRateValue(name)
		return int32(v), ok
	},
	"bit_depth": func(name string) (int32, bool) {
		v, ok := ptslv1.BitDepthValue(name)
		return int32(v), ok
	},
	"input_output_settings": func(name string) (int32, bool) {
		v, ok := ptslv1.IOSettingsValue(name)
		return int32(v), ok
	},
}

// OpenSession opens a session from a path.
type OpenSession struct {
	Base
	Request *ptslv1.OpenSessionRequestBody
}

func (*OpenSession) CommandID() ptslv1.CommandID { return ptslv1.CommandOpenSession }

func (o *OpenSession) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// CloseSession closes the currently open session.
type CloseSession struct {
	Base
	Request *ptslv1.CloseSessionRequestBody
}

func (*CloseSession) CommandID() ptslv1.CommandID { return ptslv1.CommandCloseSession }

func (o *CloseSession) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SaveSession saves the currently open session.
type SaveSession struct {
	Base
}

func (*SaveSession) CommandID() ptslv1.CommandID { return ptslv1.CommandSaveSession }

// SaveSessionAs saves the session under a new name and location.
type SaveSessionAs struct {
	Base
	Request *ptslv1.SaveSessionAsRequestBody
}

func (*SaveSessionAs) CommandID() ptslv1.CommandID { return ptslv1.CommandSaveSessionAs }

func (o *SaveSessionAs) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// ExportSessionInfoAsText exports session facts as text, inline or to a
// file depending on the requested output type.
type ExportSessionInfoAsText struct {
	Base
	Request  *ptslv1.ExportSessionInfoAsTextRequestBody
	Response *ptslv1.ExportSessionInfoAsTextResponseBody
}

func (*ExportSessionInfoAsText) CommandID() ptslv1.CommandID {
	return ptslv1.CommandExportSessionInfoAsText
}

func (o *ExportSessionInfoAsText) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

func (*ExportSessionInfoAsText) NewResponseBody() any {
	return new(ptslv1.ExportSessionInfoAsTextResponseBody)
}

func (o *ExportSessionInfoAsText) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.ExportSessionInfoAsTextResponseBody)
}

// GetSessionName reads the open session's name.
type GetSessionName struct {
	Base
	Response *ptslv1.GetSessionNameResponseBody
}

func (*GetSessionName) CommandID() ptslv1.CommandID { return ptslv1.CommandGetSessionName }

func (*GetSessionName) NewResponseBody() any { return new(ptslv1.GetSessionNameResponseBody) }

func (o *GetSessionName) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionNameResponseBody)
}

// GetSessionPath reads the open session's path.
type GetSessionPath struct {
	Base
	Response *ptslv1.GetSessionPathResponseBody
}

func (*GetSessionPath) CommandID() ptslv1.CommandID { return ptslv1.CommandGetSessionPath }

func (*GetSessionPath) NewResponseBody() any { return new(ptslv1.GetSessionPathResponseBody) }

func (o *GetSessionPath) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionPathResponseBody)
}

// GetSessionSampleRate reads the open session's sample rate.
type GetSessionSampleRate struct {
	Base
	Response *ptslv1.GetSessionSampleRateResponseBody
}

func (*GetSessionSampleRate) CommandID() ptslv1.CommandID {
	return ptslv1.CommandGetSessionSampleRate
}

func (*GetSessionSampleRate) NewResponseBody() any {
	return new(ptslv1.GetSessionSampleRateResponseBody)
}

func (o *GetSessionSampleRate) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionSampleRateResponseBody)
}

// RepairResponseJSON maps a literal rate back to its symbolic setting.
// The host substitutes 48000 for "SR_48000" and so on, which would
// otherwise be misread as an ordinal.
func (o *GetSessionSampleRate) RepairResponseJSON(body string) string {
	v := gjson.Get(body, "sample_rate")
	if v.Type != gjson.Number {
		return body
	}
	setting, ok := ptslv1.SampleRateFromHertz(int(v.Int()))
	if !ok {
		return body
	}
	patched, err := sjson.Set(body, "sample_rate", setting.String())
	if err != nil {
		return body
	}
	return patched
}

// GetSessionAudioFormat reads the open session's audio file format.
type GetSessionAudioFormat struct {
	Base
	Response *ptslv1.GetSessionAudioFormatResponseBody
}

func (*GetSessionAudioFormat) CommandID() ptslv1.CommandID {
	return ptslv1.CommandGetSessionAudioFormat
}

func (*GetSessionAudioFormat) NewResponseBody() any {
	return new(ptslv1.GetSessionAudioFormatResponseBody)
}

func (o *GetSessionAudioFormat) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionAudioFormatResponseBody)
}

// GetSessionBitDepth reads the open session's bit depth.
type GetSessionBitDepth struct {
	Base
	Response *ptslv1.GetSessionBitDepthResponseBody
}

func (*GetSessionBitDepth) CommandID() ptslv1.CommandID { return ptslv1.CommandGetSessionBitDepth }

func (*GetSessionBitDepth) NewResponseBody() any {
	return new(ptslv1.GetSessionBitDepthResponseBody)
}

func (o *GetSessionBitDepth) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionBitDepthResponseBody)
}

// GetSessionInterleavedState reads the open session's interleaved state.
type GetSessionInterleavedState struct {
	Base
	Response *ptslv1.GetSessionInterleavedStateResponseBody
}

func (*GetSessionInterleavedState) CommandID() ptslv1.CommandID {
	return ptslv1.CommandGetSessionInterleavedState
}

func (*GetSessionInterleavedState) NewResponseBody() any {
	return new(ptslv1.GetSessionInterleavedStateResponseBody)
}

func (o *GetSessionInterleavedState) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionInterleavedStateResponseBody)
}

// GetSessionTimeCodeRate reads the open session's time code rate.
type GetSessionTimeCodeRate struct {
	Base
	Response *ptslv1.GetSessionTimeCodeRateResponseBody
}

func (*GetSessionTimeCodeRate) CommandID() ptslv1.CommandID {
	return ptslv1.CommandGetSessionTimeCodeRate
}

func (*GetSessionTimeCodeRate) NewResponseBody() any {
	return new(ptslv1.GetSessionTimeCodeRateResponseBody)
}

func (o *GetSessionTimeCodeRate) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionTimeCodeRateResponseBody)
}

// GetSessionFeetFramesRate reads the open session's feet+frames rate.
type GetSessionFeetFramesRate struct {
	Base
	Response *ptslv1.GetSessionFeetFramesRateResponseBody
}

func (*GetSessionFeetFramesRate) CommandID() ptslv1.CommandID {
	return ptslv1.CommandGetSessionFeetFramesRate
}

func (*GetSessionFeetFramesRate) NewResponseBody() any {
	return new(ptslv1.GetSessionFeetFramesRateResponseBody)
}

func (o *GetSessionFeetFramesRate) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionFeetFramesRateResponseBody)
}

// GetSessionStartTime reads the open session's start time.
type GetSessionStartTime struct {
	Base
	Response *ptslv1.GetSessionStartTimeResponseBody
}

func (*GetSessionStartTime) CommandID() ptslv1.CommandID {
	return ptslv1.CommandGetSessionStartTime
}

func (*GetSessionStartTime) NewResponseBody() any {
	return new(ptslv1.GetSessionStartTimeResponseBody)
}

func (o *GetSessionStartTime) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionStartTimeResponseBody)
}

// GetSessionLength reads the open session's length.
type GetSessionLength struct {
	Base
	Response *ptslv1.GetSessionLengthResponseBody
}

func (*GetSessionLength) CommandID() ptslv1.CommandID { return ptslv1.CommandGetSessionLength }

func (*GetSessionLength) NewResponseBody() any {
	return new(ptslv1.GetSessionLengthResponseBody)
}

func (o *GetSessionLength) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetSessionLengthResponseBody)
}

// SetSessionAudioFormat sets the session audio file format.
type SetSessionAudioFormat struct {
	Base
	Request *ptslv1.SetSessionAudioFormatRequestBody
}

func (*SetSessionAudioFormat) CommandID() ptslv1.CommandID {
	return ptslv1.CommandSetSessionAudioFormat
}

func (o *SetSessionAudioFormat) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SetSessionBitDepth sets the session bit depth.
type SetSessionBitDepth struct {
	Base
	Request *ptslv1.SetSessionBitDepthRequestBody
}

func (*SetSessionBitDepth) CommandID() ptslv1.CommandID { return ptslv1.CommandSetSessionBitDepth }

func (o *SetSessionBitDepth) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SetSessionInterleavedState sets the session interleaved state.
type SetSessionInterleavedState struct {
	Base
	Request *ptslv1.SetSessionInterleavedStateRequestBody
}

func (*SetSessionInterleavedState) CommandID() ptslv1.CommandID {
	return ptslv1.CommandSetSessionInterleavedState
}

func (o *SetSessionInterleavedState) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SetSessionTimeCodeRate sets the session time code rate.
type SetSessionTimeCodeRate struct {
	Base
	Request *ptslv1.SetSessionTimeCodeRateRequestBody
}

func (*SetSessionTimeCodeRate) CommandID() ptslv1.CommandID {
	return ptslv1.CommandSetSessionTimeCodeRate
}

func (o *SetSessionTimeCodeRate) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SetSessionFeetFramesRate sets the session feet+frames rate.
type SetSessionFeetFramesRate struct {
	Base
	Request *ptslv1.SetSessionFeetFramesRateRequestBody
}

func (*SetSessionFeetFramesRate) CommandID() ptslv1.CommandID {
	return ptslv1.CommandSetSessionFeetFramesRate
}

func (o *SetSessionFeetFramesRate) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SetSessionStartTime sets the session start time.
type SetSessionStartTime struct {
	Base
	Request *ptslv1.SetSessionStartTimeRequestBody
}

func (*SetSessionStartTime) CommandID() ptslv1.CommandID {
	return ptslv1.CommandSetSessionStartTime
}

func (o *SetSessionStartTime) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// SetSessionLength sets the session length.
type SetSessionLength struct {
	Base
	Request *ptslv1.SetSessionLengthRequestBody
}

func (*SetSessionLength) CommandID() ptslv1.CommandID { return ptslv1.CommandSetSessionLength }

func (o *SetSessionLength) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}
