package ops

import (
	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// GetTrackList lists tracks matching the request filters.
type GetTrackList struct {
	Base
	Request  *ptslv1.GetTrackListRequestBody
	Response *ptslv1.GetTrackListResponseBody
}

func (*GetTrackList) CommandID() ptslv1.CommandID { return ptslv1.CommandGetTrackList }

func (o *GetTrackList) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

func (*GetTrackList) NewResponseBody() any { return new(ptslv1.GetTrackListResponseBody) }

func (o *GetTrackList) OnResponseBody(body any) {
	o.Response = body.(*ptslv1.GetTrackListResponseBody)
}

// SelectAllClipsOnTrack selects every clip on the named track.
type SelectAllClipsOnTrack struct {
	Base
	Request *ptslv1.SelectAllClipsOnTrackRequestBody
}

func (*SelectAllClipsOnTrack) CommandID() ptslv1.CommandID {
	return ptslv1.CommandSelectAllClipsOnTrack
}

func (o *SelectAllClipsOnTrack) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// ExtendSelectionToTargetTracks extends the edit selection onto the named
// tracks.
type ExtendSelectionToTargetTracks struct {
	Base
	Request *ptslv1.ExtendSelectionToTargetTracksRequestBody
}

func (*ExtendSelectionToTargetTracks) CommandID() ptslv1.CommandID {
	return ptslv1.CommandExtendSelectionToTargetTracks
}

func (o *ExtendSelectionToTargetTracks) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// TrimToSelection trims clips to the edit selection.
type TrimToSelection struct {
	Base
}

func (*TrimToSelection) CommandID() ptslv1.CommandID { return ptslv1.CommandTrimToSelection }

// RefreshTargetAudioFiles reloads the named audio files from disk.
type RefreshTargetAudioFiles struct {
	Base
	Request *ptslv1.RefreshTargetAudioFilesRequestBody
}

func (*RefreshTargetAudioFiles) CommandID() ptslv1.CommandID {
	return ptslv1.CommandRefreshTargetAudioFiles
}

func (o *RefreshTargetAudioFiles) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// RefreshAllModifiedAudioFiles reloads every audio file modified outside
// the host.
type RefreshAllModifiedAudioFiles struct {
	Base
}

func (*RefreshAllModifiedAudioFiles) CommandID() ptslv1.CommandID {
	return ptslv1.CommandRefreshAllModifiedAudioFiles
}
