package ptslv1

import (
	"encoding/json"
	"fmt"
)

// Setting enums marshal to their symbolic wire names and unmarshal from
// either the symbolic name or the bare ordinal; the host is known to emit
// both encodings depending on direction.

func marshalEnumJSON[T ~int32](v T, names map[T]string) ([]byte, error) {
	if name, ok := names[v]; ok {
		return json.Marshal(name)
	}
	return json.Marshal(int32(v))
}

func unmarshalEnumJSON[T ~int32](data []byte, values map[string]T, label string, dst *T) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("parse %s: %w", label, err)
		}
		v, ok := values[name]
		if !ok {
			return fmt.Errorf("unknown %s %q", label, name)
		}
		*dst = v
		return nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse %s: %w", label, err)
	}
	*dst = T(n)
	return nil
}

func invert[T ~int32](names map[T]string) map[string]T {
	values := make(map[string]T, len(names))
	for v, name := range names {
		values[name] = v
	}
	return values
}

func enumString[T ~int32](v T, names map[T]string, label string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", label, int32(v))
}

// SessionAudioFormat is the on-disk audio file format of a session.
type SessionAudioFormat int32

const (
	SAF_None SessionAudioFormat = 0
	SAF_WAVE SessionAudioFormat = 1
	SAF_AIFF SessionAudioFormat = 2
)

var sessionAudioFormatNames = map[SessionAudioFormat]string{
	SAF_None: "SAF_None",
	SAF_WAVE: "SAF_WAVE",
	SAF_AIFF: "SAF_AIFF",
}

var sessionAudioFormatValues = invert(sessionAudioFormatNames)

func (f SessionAudioFormat) String() string {
	return enumString(f, sessionAudioFormatNames, "SessionAudioFormat")
}

func (f SessionAudioFormat) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(f, sessionAudioFormatNames)
}

func (f *SessionAudioFormat) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, sessionAudioFormatValues, "session audio format", f)
}

// SessionAudioFormatValue resolves a symbolic name to its ordinal.
func SessionAudioFormatValue(name string) (SessionAudioFormat, bool) {
	v, ok := sessionAudioFormatValues[name]
	return v, ok
}

// SampleRate is a session sample rate setting.
type SampleRate int32

const (
	SR_None   SampleRate = 0
	SR_44100  SampleRate = 1
	SR_48000  SampleRate = 2
	SR_88200  SampleRate = 3
	SR_96000  SampleRate = 4
	SR_176400 SampleRate = 5
	SR_192000 SampleRate = 6
)

var sampleRateNames = map[SampleRate]string{
	SR_None:   "SR_None",
	SR_44100:  "SR_44100",
	SR_48000:  "SR_48000",
	SR_88200:  "SR_88200",
	SR_96000:  "SR_96000",
	SR_176400: "SR_176400",
	SR_192000: "SR_192000",
}

var sampleRateValues = invert(sampleRateNames)

var sampleRateHertz = map[SampleRate]int{
	SR_44100:  44100,
	SR_48000:  48000,
	SR_88200:  88200,
	SR_96000:  96000,
	SR_176400: 176400,
	SR_192000: 192000,
}

func (s SampleRate) String() string {
	return enumString(s, sampleRateNames, "SampleRate")
}

func (s SampleRate) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(s, sampleRateNames)
}

func (s *SampleRate) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, sampleRateValues, "sample rate", s)
}

// SampleRateValue resolves a symbolic name to its ordinal.
func SampleRateValue(name string) (SampleRate, bool) {
	v, ok := sampleRateValues[name]
	return v, ok
}

// Hertz reports the literal rate for a setting, or 0 for SR_None.
func (s SampleRate) Hertz() int {
	return sampleRateHertz[s]
}

// SampleRateFromHertz maps a literal rate back to its setting. The host
// sometimes substitutes the literal rate for the symbolic name on the wire.
func SampleRateFromHertz(hz int) (SampleRate, bool) {
	for s, rate := range sampleRateHertz {
		if rate == hz {
			return s, true
		}
	}
	return SR_None, false
}

// BitDepth is a session bit depth setting.
type BitDepth int32

const (
	Bit_None   BitDepth = 0
	Bit16      BitDepth = 1
	Bit24      BitDepth = 2
	Bit32Float BitDepth = 3
)

var bitDepthNames = map[BitDepth]string{
	Bit_None:   "Bit_None",
	Bit16:      "Bit16",
	Bit24:      "Bit24",
	Bit32Float: "Bit32Float",
}

var bitDepthValues = invert(bitDepthNames)

func (b BitDepth) String() string {
	return enumString(b, bitDepthNames, "BitDepth")
}

func (b BitDepth) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(b, bitDepthNames)
}

func (b *BitDepth) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, bitDepthValues, "bit depth", b)
}

// BitDepthValue resolves a symbolic name to its ordinal.
func BitDepthValue(name string) (BitDepth, bool) {
	v, ok := bitDepthValues[name]
	return v, ok
}

// IOSettings selects the I/O settings preset applied to a new session.
type IOSettings int32

const (
	IO_None        IOSettings = 0
	IO_Last        IOSettings = 1
	IO_StereoMix   IOSettings = 2
	IO_51FilmMix   IOSettings = 3
	IO_51SMPTEMix  IOSettings = 4
	IO_51DTSMix    IOSettings = 5
	IO_UserDefined IOSettings = 6
)

var ioSettingsNames = map[IOSettings]string{
	IO_None:        "IO_None",
	IO_Last:        "IO_Last",
	IO_StereoMix:   "IO_StereoMix",
	IO_51FilmMix:   "IO_51FilmMix",
	IO_51SMPTEMix:  "IO_51SMPTEMix",
	IO_51DTSMix:    "IO_51DTSMix",
	IO_UserDefined: "IO_UserDefined",
}

var ioSettingsValues = invert(ioSettingsNames)

func (s IOSettings) String() string {
	return enumString(s, ioSettingsNames, "IOSettings")
}

func (s IOSettings) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(s, ioSettingsNames)
}

func (s *IOSettings) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, ioSettingsValues, "io settings", s)
}

// IOSettingsValue resolves a symbolic name to its ordinal.
func IOSettingsValue(name string) (IOSettings, bool) {
	v, ok := ioSettingsValues[name]
	return v, ok
}

// SessionTimeCodeRate is the session time code rate setting.
type SessionTimeCodeRate int32

const (
	STCR_Fps23976    SessionTimeCodeRate = 0
	STCR_Fps24       SessionTimeCodeRate = 1
	STCR_Fps25       SessionTimeCodeRate = 2
	STCR_Fps2997     SessionTimeCodeRate = 3
	STCR_Fps2997Drop SessionTimeCodeRate = 4
	STCR_Fps30       SessionTimeCodeRate = 5
	STCR_Fps30Drop   SessionTimeCodeRate = 6
	STCR_Fps47952    SessionTimeCodeRate = 7
	STCR_Fps48       SessionTimeCodeRate = 8
	STCR_Fps50       SessionTimeCodeRate = 9
	STCR_Fps5994     SessionTimeCodeRate = 10
	STCR_Fps5994Drop SessionTimeCodeRate = 11
	STCR_Fps60       SessionTimeCodeRate = 12
	STCR_Fps60Drop   SessionTimeCodeRate = 13
)

var sessionTimeCodeRateNames = map[SessionTimeCodeRate]string{
	STCR_Fps23976:    "STCR_Fps23976",
	STCR_Fps24:       "STCR_Fps24",
	STCR_Fps25:       "STCR_Fps25",
	STCR_Fps2997:     "STCR_Fps2997",
	STCR_Fps2997Drop: "STCR_Fps2997Drop",
	STCR_Fps30:       "STCR_Fps30",
	STCR_Fps30Drop:   "STCR_Fps30Drop",
	STCR_Fps47952:    "STCR_Fps47952",
	STCR_Fps48:       "STCR_Fps48",
	STCR_Fps50:       "STCR_Fps50",
	STCR_Fps5994:     "STCR_Fps5994",
	STCR_Fps5994Drop: "STCR_Fps5994Drop",
	STCR_Fps60:       "STCR_Fps60",
	STCR_Fps60Drop:   "STCR_Fps60Drop",
}

var sessionTimeCodeRateValues = invert(sessionTimeCodeRateNames)

func (r SessionTimeCodeRate) String() string {
	return enumString(r, sessionTimeCodeRateNames, "SessionTimeCodeRate")
}

func (r SessionTimeCodeRate) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(r, sessionTimeCodeRateNames)
}

func (r *SessionTimeCodeRate) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, sessionTimeCodeRateValues, "time code rate", r)
}

// SessionFeetFramesRate is the session feet+frames rate setting.
type SessionFeetFramesRate int32

const (
	SFFR_Fps23976 SessionFeetFramesRate = 0
	SFFR_Fps24    SessionFeetFramesRate = 1
	SFFR_Fps25    SessionFeetFramesRate = 2
)

var sessionFeetFramesRateNames = map[SessionFeetFramesRate]string{
	SFFR_Fps23976: "SFFR_Fps23976",
	SFFR_Fps24:    "SFFR_Fps24",
	SFFR_Fps25:    "SFFR_Fps25",
}

var sessionFeetFramesRateValues = invert(sessionFeetFramesRateNames)

func (r SessionFeetFramesRate) String() string {
	return enumString(r, sessionFeetFramesRateNames, "SessionFeetFramesRate")
}

func (r SessionFeetFramesRate) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(r, sessionFeetFramesRateNames)
}

func (r *SessionFeetFramesRate) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, sessionFeetFramesRateValues, "feet frames rate", r)
}

// PlaybackMode is a transport playback mode flag.
type PlaybackMode int32

const (
	PM_Normal           PlaybackMode = 0
	PM_Loop             PlaybackMode = 1
	PM_DynamicTransport PlaybackMode = 2
)

var playbackModeNames = map[PlaybackMode]string{
	PM_Normal:           "PM_Normal",
	PM_Loop:             "PM_Loop",
	PM_DynamicTransport: "PM_DynamicTransport",
}

var playbackModeValues = invert(playbackModeNames)

func (m PlaybackMode) String() string {
	return enumString(m, playbackModeNames, "PlaybackMode")
}

func (m PlaybackMode) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(m, playbackModeNames)
}

func (m *PlaybackMode) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, playbackModeValues, "playback mode", m)
}

// RecordMode is the transport record mode setting.
type RecordMode int32

const (
	RM_Normal           RecordMode = 0
	RM_Loop             RecordMode = 1
	RM_Destructive      RecordMode = 2
	RM_QuickPunch       RecordMode = 3
	RM_TrackPunch       RecordMode = 4
	RM_DestructivePunch RecordMode = 5
)

var recordModeNames = map[RecordMode]string{
	RM_Normal:           "RM_Normal",
	RM_Loop:             "RM_Loop",
	RM_Destructive:      "RM_Destructive",
	RM_QuickPunch:       "RM_QuickPunch",
	RM_TrackPunch:       "RM_TrackPunch",
	RM_DestructivePunch: "RM_DestructivePunch",
}

var recordModeValues = invert(recordModeNames)

func (m RecordMode) String() string {
	return enumString(m, recordModeNames, "RecordMode")
}

func (m RecordMode) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(m, recordModeNames)
}

func (m *RecordMode) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, recordModeValues, "record mode", m)
}

// TransportState is the current transport state reported by the host.
type TransportState int32

const (
	TS_TransportStopped     TransportState = 0
	TS_TransportPlaying     TransportState = 1
	TS_TransportRecording   TransportState = 2
	TS_TransportFastForward TransportState = 3
	TS_TransportRewind      TransportState = 4
)

var transportStateNames = map[TransportState]string{
	TS_TransportStopped:     "TS_TransportStopped",
	TS_TransportPlaying:     "TS_TransportPlaying",
	TS_TransportRecording:   "TS_TransportRecording",
	TS_TransportFastForward: "TS_TransportFastForward",
	TS_TransportRewind:      "TS_TransportRewind",
}

var transportStateValues = invert(transportStateNames)

func (s TransportState) String() string {
	return enumString(s, transportStateNames, "TransportState")
}

func (s TransportState) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(s, transportStateNames)
}

func (s *TransportState) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, transportStateValues, "transport state", s)
}

// AutomationDataOptions selects the automation data affected by the
// Special edit commands.
type AutomationDataOptions int32

const (
	ADO_All       AutomationDataOptions = 0
	ADO_Volume    AutomationDataOptions = 1
	ADO_Pan       AutomationDataOptions = 2
	ADO_Mute      AutomationDataOptions = 3
	ADO_SendLevel AutomationDataOptions = 4
	ADO_SendPan   AutomationDataOptions = 5
	ADO_SendMute  AutomationDataOptions = 6
	ADO_PlugIn    AutomationDataOptions = 7
)

var automationDataOptionsNames = map[AutomationDataOptions]string{
	ADO_All:       "ADO_All",
	ADO_Volume:    "ADO_Volume",
	ADO_Pan:       "ADO_Pan",
	ADO_Mute:      "ADO_Mute",
	ADO_SendLevel: "ADO_SendLevel",
	ADO_SendPan:   "ADO_SendPan",
	ADO_SendMute:  "ADO_SendMute",
	ADO_PlugIn:    "ADO_PlugIn",
}

var automationDataOptionsValues = invert(automationDataOptionsNames)

func (o AutomationDataOptions) String() string {
	return enumString(o, automationDataOptionsNames, "AutomationDataOptions")
}

func (o AutomationDataOptions) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(o, automationDataOptionsNames)
}

func (o *AutomationDataOptions) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, automationDataOptionsValues, "automation data option", o)
}

// PasteSpecialOptions selects the PasteSpecial behavior.
type PasteSpecialOptions int32

const (
	PSO_Merge                   PasteSpecialOptions = 0
	PSO_Repeat                  PasteSpecialOptions = 1
	PSO_ToCurrentAutomationType PasteSpecialOptions = 2
)

var pasteSpecialOptionsNames = map[PasteSpecialOptions]string{
	PSO_Merge:                   "PSO_Merge",
	PSO_Repeat:                  "PSO_Repeat",
	PSO_ToCurrentAutomationType: "PSO_ToCurrentAutomationType",
}

var pasteSpecialOptionsValues = invert(pasteSpecialOptionsNames)

func (o PasteSpecialOptions) String() string {
	return enumString(o, pasteSpecialOptionsNames, "PasteSpecialOptions")
}

func (o PasteSpecialOptions) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(o, pasteSpecialOptionsNames)
}

func (o *PasteSpecialOptions) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, pasteSpecialOptionsValues, "paste special option", o)
}

// TrackListType selects which tracks a text export covers.
type TrackListType int32

const (
	AllTracks          TrackListType = 0
	SelectedTracksOnly TrackListType = 1
)

var trackListTypeNames = map[TrackListType]string{
	AllTracks:          "AllTracks",
	SelectedTracksOnly: "SelectedTracksOnly",
}

var trackListTypeValues = invert(trackListTypeNames)

func (t TrackListType) String() string {
	return enumString(t, trackListTypeNames, "TrackListType")
}

func (t TrackListType) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(t, trackListTypeNames)
}

func (t *TrackListType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, trackListTypeValues, "track list type", t)
}

// FadeHandlingType selects crossfade rendering in a text export.
type FadeHandlingType int32

const (
	ShowCrossfades         FadeHandlingType = 0
	DontShowCrossfades     FadeHandlingType = 1
	CombineCrossfadedClips FadeHandlingType = 2
)

var fadeHandlingTypeNames = map[FadeHandlingType]string{
	ShowCrossfades:         "ShowCrossfades",
	DontShowCrossfades:     "DontShowCrossfades",
	CombineCrossfadedClips: "CombineCrossfadedClips",
}

var fadeHandlingTypeValues = invert(fadeHandlingTypeNames)

func (t FadeHandlingType) String() string {
	return enumString(t, fadeHandlingTypeNames, "FadeHandlingType")
}

func (t FadeHandlingType) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(t, fadeHandlingTypeNames)
}

func (t *FadeHandlingType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, fadeHandlingTypeValues, "fade handling type", t)
}

// TrackOffsetOptions selects the time base used for track offsets.
type TrackOffsetOptions int32

const (
	BarsBeats  TrackOffsetOptions = 0
	MinSecs    TrackOffsetOptions = 1
	TimeCode   TrackOffsetOptions = 2
	FeetFrames TrackOffsetOptions = 3
	Samples    TrackOffsetOptions = 4
)

var trackOffsetOptionsNames = map[TrackOffsetOptions]string{
	BarsBeats:  "BarsBeats",
	MinSecs:    "MinSecs",
	TimeCode:   "TimeCode",
	FeetFrames: "FeetFrames",
	Samples:    "Samples",
}

var trackOffsetOptionsValues = invert(trackOffsetOptionsNames)

func (o TrackOffsetOptions) String() string {
	return enumString(o, trackOffsetOptionsNames, "TrackOffsetOptions")
}

func (o TrackOffsetOptions) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(o, trackOffsetOptionsNames)
}

func (o *TrackOffsetOptions) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, trackOffsetOptionsValues, "track offset option", o)
}

// TextAsFileFormat selects the character encoding of a text export file.
type TextAsFileFormat int32

const (
	TextEdit TextAsFileFormat = 0
	UTF8     TextAsFileFormat = 1
)

var textAsFileFormatNames = map[TextAsFileFormat]string{
	TextEdit: "TextEdit",
	UTF8:     "UTF8",
}

var textAsFileFormatValues = invert(textAsFileFormatNames)

func (f TextAsFileFormat) String() string {
	return enumString(f, textAsFileFormatNames, "TextAsFileFormat")
}

func (f TextAsFileFormat) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(f, textAsFileFormatNames)
}

func (f *TextAsFileFormat) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, textAsFileFormatValues, "text file format", f)
}

// ESIOutputType selects whether a text export is returned inline or
// written to a file.
type ESIOutputType int32

const (
	ESI_File   ESIOutputType = 0
	ESI_String ESIOutputType = 1
)

var esiOutputTypeNames = map[ESIOutputType]string{
	ESI_File:   "ESI_File",
	ESI_String: "ESI_String",
}

var esiOutputTypeValues = invert(esiOutputTypeNames)

func (t ESIOutputType) String() string {
	return enumString(t, esiOutputTypeNames, "ESIOutputType")
}

func (t ESIOutputType) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(t, esiOutputTypeNames)
}

func (t *ESIOutputType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, esiOutputTypeValues, "output type", t)
}

// TrackListFilter selects tracks for GetTrackList.
type TrackListFilter int32

const (
	TLF_All      TrackListFilter = 0
	TLF_Selected TrackListFilter = 1
	TLF_Muted    TrackListFilter = 2
	TLF_Soloed   TrackListFilter = 3
	TLF_Hidden   TrackListFilter = 4
	TLF_Inactive TrackListFilter = 5
)

var trackListFilterNames = map[TrackListFilter]string{
	TLF_All:      "TLF_All",
	TLF_Selected: "TLF_Selected",
	TLF_Muted:    "TLF_Muted",
	TLF_Soloed:   "TLF_Soloed",
	TLF_Hidden:   "TLF_Hidden",
	TLF_Inactive: "TLF_Inactive",
}

var trackListFilterValues = invert(trackListFilterNames)

func (f TrackListFilter) String() string {
	return enumString(f, trackListFilterNames, "TrackListFilter")
}

func (f TrackListFilter) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(f, trackListFilterNames)
}

func (f *TrackListFilter) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, trackListFilterValues, "track list filter", f)
}
