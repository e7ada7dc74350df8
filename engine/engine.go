// Package engine is the convenience facade over the protocol client:
// typed methods that build an operation, run it, and unwrap the response.
package engine

import (
	"context"
	"fmt"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
	"github.com/louisbranch/ptsl/client"
	"github.com/louisbranch/ptsl/ops"
)

// Runner executes operations. *client.Client satisfies it; tests stub it.
type Runner interface {
	Run(ctx context.Context, op ops.Operation) error
	Close() error
}

// Engine wraps a connected client.
type Engine struct {
	client Runner
}

// Open dials a host and returns an engine over the connected client.
func Open(ctx context.Context, cfg client.Config) (*Engine, error) {
	c, err := client.Dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{client: c}, nil
}

// New wraps an already-connected runner.
func New(r Runner) *Engine {
	return &Engine{client: r}
}

// Close releases the underlying client.
func (e *Engine) Close() error {
	return e.client.Close()
}

func errEmptyResponse(op ops.Operation) error {
	return fmt.Errorf("%s returned no response body", op.CommandID())
}

// HostReadyCheck runs the liveness command; the host answers it even on an
// unregistered connection.
func (e *Engine) HostReadyCheck(ctx context.Context) error {
	return e.client.Run(ctx, &ops.HostReadyCheck{})
}

// PTSLVersion reports the protocol version running on the host.
func (e *Engine) PTSLVersion(ctx context.Context) (int, error) {
	op := &ops.GetPTSLVersion{}
	if err := e.client.Run(ctx, op); err != nil {
		return 0, err
	}
	if op.Response == nil {
		return 0, errEmptyResponse(op)
	}
	return int(op.Response.Version), nil
}

// CreateSessionOptions carries the format settings for a new session.
// DefaultCreateSessionOptions supplies the host defaults; zero-valued enum
// fields are normalized to them.
type CreateSessionOptions struct {
	FileType    ptslv1.SessionAudioFormat
	SampleRate  ptslv1.SampleRate
	BitDepth    ptslv1.BitDepth
	IOSetting   ptslv1.IOSettings
	Interleaved bool
}

// DefaultCreateSessionOptions returns the host's defaults: interleaved
// 24-bit WAVE at 48 kHz with the last-used I/O settings.
func DefaultCreateSessionOptions() CreateSessionOptions {
	return CreateSessionOptions{
		FileType:    ptslv1.SAF_WAVE,
		SampleRate:  ptslv1.SR_48000,
		BitDepth:    ptslv1.Bit24,
		IOSetting:   ptslv1.IO_Last,
		Interleaved: true,
	}
}

func (o CreateSessionOptions) normalized() CreateSessionOptions {
	defaults := DefaultCreateSessionOptions()
	if o.FileType == ptslv1.SAF_None {
		o.FileType = defaults.FileType
	}
	if o.SampleRate == ptslv1.SR_None {
		o.SampleRate = defaults.SampleRate
	}
	if o.BitDepth == ptslv1.Bit_None {
		o.BitDepth = defaults.BitDepth
	}
	if o.IOSetting == ptslv1.IO_None {
		o.IOSetting = defaults.IOSetting
	}
	return o
}

func (o CreateSessionOptions) request(name, path string) *ptslv1.CreateSessionRequestBody {
	o = o.normalized()
	return &ptslv1.CreateSessionRequestBody{
		SessionName:         name,
		FileType:            o.FileType,
		SampleRate:          o.SampleRate,
		InputOutputSettings: o.IOSetting,
		IsInterleaved:       o.Interleaved,
		SessionLocation:     path,
		BitDepth:            o.BitDepth,
	}
}

// CreateSession creates a new session.
func (e *Engine) CreateSession(ctx context.Context, name, path string, opts CreateSessionOptions) error {
	return e.client.Run(ctx, &ops.CreateSession{Request: opts.request(name, path)})
}

// CreateSessionFromTemplate creates a new session from an installed
// template.
func (e *Engine) CreateSessionFromTemplate(ctx context.Context, templateGroup, templateName, name, path string, opts CreateSessionOptions) error {
	req := opts.request(name, path)
	req.CreateFromTemplate = true
	req.TemplateGroup = templateGroup
	req.TemplateName = templateName
	return e.client.Run(ctx, &ops.CreateSession{Request: req})
}

// CreateSessionFromAAF creates a session by converting an AAF.
func (e *Engine) CreateSessionFromAAF(ctx context.Context, name, path, aafPath string, opts CreateSessionOptions) error {
	req := opts.request(name, path)
	req.CreateFromAAF = true
	req.PathToAAF = aafPath
	return e.client.Run(ctx, &ops.CreateSession{Request: req})
}

// OpenSession opens a session from a path.
func (e *Engine) OpenSession(ctx context.Context, path string) error {
	return e.client.Run(ctx, &ops.OpenSession{
		Request: &ptslv1.OpenSessionRequestBody{SessionPath: path},
	})
}

// CloseSession closes the open session.
func (e *Engine) CloseSession(ctx context.Context, saveOnClose bool) error {
	return e.client.Run(ctx, &ops.CloseSession{
		Request: &ptslv1.CloseSessionRequestBody{SaveOnClose: saveOnClose},
	})
}

// SaveSession saves the open session.
func (e *Engine) SaveSession(ctx context.Context) error {
	return e.client.Run(ctx, &ops.SaveSession{})
}

// SaveSessionAs saves the open session under a new name and location.
func (e *Engine) SaveSessionAs(ctx context.Context, path, name string) error {
	return e.client.Run(ctx, &ops.SaveSessionAs{
		Request: &ptslv1.SaveSessionAsRequestBody{SessionName: name, SessionLocation: path},
	})
}

// ExportSessionInfoAsText exports session facts and returns them inline.
func (e *Engine) ExportSessionInfoAsText(ctx context.Context, req ptslv1.ExportSessionInfoAsTextRequestBody) (string, error) {
	op := &ops.ExportSessionInfoAsText{Request: &req}
	if err := e.client.Run(ctx, op); err != nil {
		return "", err
	}
	if op.Response == nil {
		return "", errEmptyResponse(op)
	}
	return op.Response.SessionInfo, nil
}

// SessionName reads the open session's name.
func (e *Engine) SessionName(ctx context.Context) (string, error) {
	op := &ops.GetSessionName{}
	if err := e.client.Run(ctx, op); err != nil {
		return "", err
	}
	if op.Response == nil {
		return "", errEmptyResponse(op)
	}
	return op.Response.SessionName, nil
}

// SessionPath reads the open session's path.
func (e *Engine) SessionPath(ctx context.Context) (string, error) {
	op := &ops.GetSessionPath{}
	if err := e.client.Run(ctx, op); err != nil {
		return "", err
	}
	if op.Response == nil {
		return "", errEmptyResponse(op)
	}
	return op.Response.SessionPath, nil
}

// SessionSampleRate reads the open session's sample rate in hertz.
func (e *Engine) SessionSampleRate(ctx context.Context) (int, error) {
	op := &ops.GetSessionSampleRate{}
	if err := e.client.Run(ctx, op); err != nil {
		return 0, err
	}
	if op.Response == nil {
		return 0, errEmptyResponse(op)
	}
	return op.Response.SampleRate.Hertz(), nil
}

// SessionAudioFormat reads the open session's audio file format.
func (e *Engine) SessionAudioFormat(ctx context.Context) (ptslv1.SessionAudioFormat, error) {
	op := &ops.GetSessionAudioFormat{}
	if err := e.client.Run(ctx, op); err != nil {
		return ptslv1.SAF_None, err
	}
	if op.Response == nil {
		return ptslv1.SAF_None, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// SessionBitDepth reads the open session's bit depth.
func (e *Engine) SessionBitDepth(ctx context.Context) (ptslv1.BitDepth, error) {
	op := &ops.GetSessionBitDepth{}
	if err := e.client.Run(ctx, op); err != nil {
		return ptslv1.Bit_None, err
	}
	if op.Response == nil {
		return ptslv1.Bit_None, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// SessionInterleavedState reads the open session's interleaved state.
func (e *Engine) SessionInterleavedState(ctx context.Context) (bool, error) {
	op := &ops.GetSessionInterleavedState{}
	if err := e.client.Run(ctx, op); err != nil {
		return false, err
	}
	if op.Response == nil {
		return false, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// SessionTimeCodeRate reads the open session's time code rate.
func (e *Engine) SessionTimeCodeRate(ctx context.Context) (ptslv1.SessionTimeCodeRate, error) {
	op := &ops.GetSessionTimeCodeRate{}
	if err := e.client.Run(ctx, op); err != nil {
		return 0, err
	}
	if op.Response == nil {
		return 0, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// SessionFeetFramesRate reads the open session's feet+frames rate.
func (e *Engine) SessionFeetFramesRate(ctx context.Context) (ptslv1.SessionFeetFramesRate, error) {
	op := &ops.GetSessionFeetFramesRate{}
	if err := e.client.Run(ctx, op); err != nil {
		return 0, err
	}
	if op.Response == nil {
		return 0, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// SessionStartTime reads the open session's start time.
func (e *Engine) SessionStartTime(ctx context.Context) (string, error) {
	op := &ops.GetSessionStartTime{}
	if err := e.client.Run(ctx, op); err != nil {
		return "", err
	}
	if op.Response == nil {
		return "", errEmptyResponse(op)
	}
	return op.Response.SessionStartTime, nil
}

// SessionLength reads the open session's length.
func (e *Engine) SessionLength(ctx context.Context) (string, error) {
	op := &ops.GetSessionLength{}
	if err := e.client.Run(ctx, op); err != nil {
		return "", err
	}
	if op.Response == nil {
		return "", errEmptyResponse(op)
	}
	return op.Response.SessionLength, nil
}

// SetSessionAudioFormat sets the session audio file format.
func (e *Engine) SetSessionAudioFormat(ctx context.Context, format ptslv1.SessionAudioFormat) error {
	return e.client.Run(ctx, &ops.SetSessionAudioFormat{
		Request: &ptslv1.SetSessionAudioFormatRequestBody{AudioFormat: format},
	})
}

// SetSessionBitDepth sets the session bit depth.
func (e *Engine) SetSessionBitDepth(ctx context.Context, depth ptslv1.BitDepth) error {
	return e.client.Run(ctx, &ops.SetSessionBitDepth{
		Request: &ptslv1.SetSessionBitDepthRequestBody{BitDepth: depth},
	})
}

// SetSessionInterleavedState sets the session interleaved state.
func (e *Engine) SetSessionInterleavedState(ctx context.Context, interleaved bool) error {
	return e.client.Run(ctx, &ops.SetSessionInterleavedState{
		Request: &ptslv1.SetSessionInterleavedStateRequestBody{InterleavedState: interleaved},
	})
}

// SetSessionTimeCodeRate sets the session time code rate.
func (e *Engine) SetSessionTimeCodeRate(ctx context.Context, rate ptslv1.SessionTimeCodeRate) error {
	return e.client.Run(ctx, &ops.SetSessionTimeCodeRate{
		Request: &ptslv1.SetSessionTimeCodeRateRequestBody{TimeCodeRate: rate},
	})
}

// SetSessionFeetFramesRate sets the session feet+frames rate.
func (e *Engine) SetSessionFeetFramesRate(ctx context.Context, rate ptslv1.SessionFeetFramesRate) error {
	return e.client.Run(ctx, &ops.SetSessionFeetFramesRate{
		Request: &ptslv1.SetSessionFeetFramesRateRequestBody{FeetFramesRate: rate},
	})
}

// SetSessionStartTime sets the session start time.
func (e *Engine) SetSessionStartTime(ctx context.Context, start string, offset ptslv1.TrackOffsetOptions, maintainRelative bool) error {
	return e.client.Run(ctx, &ops.SetSessionStartTime{
		Request: &ptslv1.SetSessionStartTimeRequestBody{
			SessionStartTime:         start,
			TrackOffsetOpts:          offset,
			MaintainRelativePosition: maintainRelative,
		},
	})
}

// SetSessionLength sets the session length.
func (e *Engine) SetSessionLength(ctx context.Context, length string) error {
	return e.client.Run(ctx, &ops.SetSessionLength{
		Request: &ptslv1.SetSessionLengthRequestBody{SessionLength: length},
	})
}

// TransportState reads the current transport state.
func (e *Engine) TransportState(ctx context.Context) (ptslv1.TransportState, error) {
	op := &ops.GetTransportState{}
	if err := e.client.Run(ctx, op); err != nil {
		return 0, err
	}
	if op.Response == nil {
		return 0, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// TransportArmed reports whether the transport is record-armed.
func (e *Engine) TransportArmed(ctx context.Context) (bool, error) {
	op := &ops.GetTransportArmed{}
	if err := e.client.Run(ctx, op); err != nil {
		return false, err
	}
	if op.Response == nil {
		return false, errEmptyResponse(op)
	}
	return op.Response.IsTransportArmed, nil
}

// PlaybackModes reads the active playback mode flags.
func (e *Engine) PlaybackModes(ctx context.Context) ([]ptslv1.PlaybackMode, error) {
	op := &ops.GetPlaybackMode{}
	if err := e.client.Run(ctx, op); err != nil {
		return nil, err
	}
	if op.Response == nil {
		return nil, errEmptyResponse(op)
	}
	return op.Response.CurrentSettings, nil
}

// SetPlaybackMode sets the playback mode.
func (e *Engine) SetPlaybackMode(ctx context.Context, mode ptslv1.PlaybackMode) error {
	return e.client.Run(ctx, &ops.SetPlaybackMode{
		Request: &ptslv1.SetPlaybackModeRequestBody{PlaybackMode: mode},
	})
}

// RecordMode reads the record mode.
func (e *Engine) RecordMode(ctx context.Context) (ptslv1.RecordMode, error) {
	op := &ops.GetRecordMode{}
	if err := e.client.Run(ctx, op); err != nil {
		return 0, err
	}
	if op.Response == nil {
		return 0, errEmptyResponse(op)
	}
	return op.Response.CurrentSetting, nil
}

// SetRecordMode sets the record mode, optionally arming the transport.
func (e *Engine) SetRecordMode(ctx context.Context, mode ptslv1.RecordMode, armTransport bool) error {
	return e.client.Run(ctx, &ops.SetRecordMode{
		Request: &ptslv1.SetRecordModeRequestBody{RecordMode: mode, ArmTransport: armTransport},
	})
}

// TogglePlayState toggles between playing and stopped.
func (e *Engine) TogglePlayState(ctx context.Context) error {
	return e.client.Run(ctx, &ops.TogglePlayState{})
}

// ToggleRecordEnable toggles record enable on the focused track.
func (e *Engine) ToggleRecordEnable(ctx context.Context) error {
	return e.client.Run(ctx, &ops.ToggleRecordEnable{})
}

// PlayHalfSpeed plays at half speed.
func (e *Engine) PlayHalfSpeed(ctx context.Context) error {
	return e.client.Run(ctx, &ops.PlayHalfSpeed{})
}

// RecordHalfSpeed records at half speed.
func (e *Engine) RecordHalfSpeed(ctx context.Context) error {
	return e.client.Run(ctx, &ops.RecordHalfSpeed{})
}

// Cut removes the edit selection to the clipboard.
func (e *Engine) Cut(ctx context.Context) error {
	return e.client.Run(ctx, &ops.Cut{})
}

// CutSpecial cuts only the selected automation data.
func (e *Engine) CutSpecial(ctx context.Context, option ptslv1.AutomationDataOptions) error {
	return e.client.Run(ctx, &ops.CutSpecial{
		Request: &ptslv1.CutSpecialRequestBody{AutomationDataOption: option},
	})
}

// Copy copies the edit selection to the clipboard.
func (e *Engine) Copy(ctx context.Context) error {
	return e.client.Run(ctx, &ops.Copy{})
}

// CopySpecial copies only the selected automation data.
func (e *Engine) CopySpecial(ctx context.Context, option ptslv1.AutomationDataOptions) error {
	return e.client.Run(ctx, &ops.CopySpecial{
		Request: &ptslv1.CopySpecialRequestBody{AutomationDataOption: option},
	})
}

// Paste pastes the clipboard at the edit insertion point.
func (e *Engine) Paste(ctx context.Context) error {
	return e.client.Run(ctx, &ops.Paste{})
}

// PasteSpecial pastes with the selected merge behavior.
func (e *Engine) PasteSpecial(ctx context.Context, option ptslv1.PasteSpecialOptions) error {
	return e.client.Run(ctx, &ops.PasteSpecial{
		Request: &ptslv1.PasteSpecialRequestBody{PasteSpecialOption: option},
	})
}

// Clear deletes the edit selection.
func (e *Engine) Clear(ctx context.Context) error {
	return e.client.Run(ctx, &ops.Clear{})
}

// ClearSpecial clears only the selected automation data.
func (e *Engine) ClearSpecial(ctx context.Context, option ptslv1.AutomationDataOptions) error {
	return e.client.Run(ctx, &ops.ClearSpecial{
		Request: &ptslv1.ClearSpecialRequestBody{AutomationDataOption: option},
	})
}

// TrackList lists tracks matching the filters; all tracks when filters is
// empty.
func (e *Engine) TrackList(ctx context.Context, pageLimit int, filters []ptslv1.TrackListInvertibleFilter) ([]ptslv1.Track, error) {
	if len(filters) == 0 {
		filters = []ptslv1.TrackListInvertibleFilter{{Filter: ptslv1.TLF_All}}
	}
	op := &ops.GetTrackList{
		Request: &ptslv1.GetTrackListRequestBody{
			PageLimit:            int32(pageLimit),
			TrackFilterList:      filters,
			IsFilterListAdditive: true,
		},
	}
	if err := e.client.Run(ctx, op); err != nil {
		return nil, err
	}
	if op.Response == nil {
		return nil, errEmptyResponse(op)
	}
	return op.Response.TrackList, nil
}

// SelectAllClipsOnTrack selects every clip on the named track.
func (e *Engine) SelectAllClipsOnTrack(ctx context.Context, trackName string) error {
	return e.client.Run(ctx, &ops.SelectAllClipsOnTrack{
		Request: &ptslv1.SelectAllClipsOnTrackRequestBody{TrackName: trackName},
	})
}

// ExtendSelectionToTargetTracks extends the edit selection onto the named
// tracks.
func (e *Engine) ExtendSelectionToTargetTracks(ctx context.Context, tracks []string) error {
	return e.client.Run(ctx, &ops.ExtendSelectionToTargetTracks{
		Request: &ptslv1.ExtendSelectionToTargetTracksRequestBody{TracksToExtendTo: tracks},
	})
}

// TrimToSelection trims clips to the edit selection.
func (e *Engine) TrimToSelection(ctx context.Context) error {
	return e.client.Run(ctx, &ops.TrimToSelection{})
}

// RefreshTargetAudioFiles reloads the named audio files from disk.
func (e *Engine) RefreshTargetAudioFiles(ctx context.Context, files []string) error {
	return e.client.Run(ctx, &ops.RefreshTargetAudioFiles{
		Request: &ptslv1.RefreshTargetAudioFilesRequestBody{FileList: files},
	})
}

// RefreshAllModifiedAudioFiles reloads every audio file modified outside
// the host.
func (e *Engine) RefreshAllModifiedAudioFiles(ctx context.Context) error {
	return e.client.Run(ctx, &ops.RefreshAllModifiedAudioFiles{})
}
