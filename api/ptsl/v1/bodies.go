package ptslv1

// Request and response bodies. Tags carry the wire names verbatim and
// never use omitempty: the host requires default-valued fields to be
// present in the JSON text.

type AuthorizeConnectionRequestBody struct {
	AuthString string `json:"auth_string"`
}

type AuthorizeConnectionResponseBody struct {
	SessionID    string `json:"session_id"`
	IsAuthorized bool   `json:"is_authorized"`
	Message      string `json:"message"`
}

type RegisterConnectionRequestBody struct {
	CompanyName     string `json:"company_name"`
	ApplicationName string `json:"application_name"`
}

type RegisterConnectionResponseBody struct {
	SessionID    string `json:"session_id"`
	IsAuthorized bool   `json:"is_authorized"`
	Message      string `json:"message"`
}

type GetPTSLVersionResponseBody struct {
	Version int32 `json:"version"`
}

type CreateSessionRequestBody struct {
	SessionName         string             `json:"session_name"`
	CreateFromTemplate  bool               `json:"create_from_template"`
	TemplateGroup       string             `json:"template_group"`
	TemplateName        string             `json:"template_name"`
	FileType            SessionAudioFormat `json:"file_type"`
	SampleRate          SampleRate         `json:"sample_rate"`
	InputOutputSettings IOSettings         `json:"input_output_settings"`
	IsInterleaved       bool               `json:"is_interleaved"`
	SessionLocation     string             `json:"session_location"`
	BitDepth            BitDepth           `json:"bit_depth"`
	CreateFromAAF       bool               `json:"create_from_aaf"`
	PathToAAF           string             `json:"path_to_aaf"`
}

type OpenSessionRequestBody struct {
	SessionPath string `json:"session_path"`
}

type CloseSessionRequestBody struct {
	SaveOnClose bool `json:"save_on_close"`
}

type SaveSessionAsRequestBody struct {
	SessionName     string `json:"session_name"`
	SessionLocation string `json:"session_location"`
}

type ExportSessionInfoAsTextRequestBody struct {
	IncludeClipList       bool               `json:"include_clip_list"`
	IncludeFileList       bool               `json:"include_file_list"`
	IncludeMarkers        bool               `json:"include_markers"`
	IncludePluginList     bool               `json:"include_plugin_list"`
	IncludeTrackEDLs      bool               `json:"include_track_edls"`
	ShowSubFrames         bool               `json:"show_sub_frames"`
	TrackListType         TrackListType      `json:"track_list_type"`
	IncludeUserTimestamps bool               `json:"include_user_timestamps"`
	FadeHandlingType      FadeHandlingType   `json:"fade_handling_type"`
	TrackOffsetOptions    TrackOffsetOptions `json:"track_offset_options"`
	TextAsFileFormat      TextAsFileFormat   `json:"text_as_file_format"`
	OutputType            ESIOutputType      `json:"output_type"`
	OutputPath            string             `json:"output_path"`
}

type ExportSessionInfoAsTextResponseBody struct {
	SessionInfo string `json:"session_info"`
}

type GetSessionNameResponseBody struct {
	SessionName string `json:"session_name"`
}

type GetSessionPathResponseBody struct {
	SessionPath string `json:"session_path"`
}

type GetSessionSampleRateResponseBody struct {
	SampleRate SampleRate `json:"sample_rate"`
}

type GetSessionAudioFormatResponseBody struct {
	CurrentSetting   SessionAudioFormat   `json:"current_setting"`
	PossibleSettings []SessionAudioFormat `json:"possible_settings"`
}

type GetSessionBitDepthResponseBody struct {
	CurrentSetting   BitDepth   `json:"current_setting"`
	PossibleSettings []BitDepth `json:"possible_settings"`
}

type GetSessionInterleavedStateResponseBody struct {
	CurrentSetting   bool   `json:"current_setting"`
	PossibleSettings []bool `json:"possible_settings"`
}

type GetSessionTimeCodeRateResponseBody struct {
	CurrentSetting   SessionTimeCodeRate   `json:"current_setting"`
	PossibleSettings []SessionTimeCodeRate `json:"possible_settings"`
}

type GetSessionFeetFramesRateResponseBody struct {
	CurrentSetting   SessionFeetFramesRate   `json:"current_setting"`
	PossibleSettings []SessionFeetFramesRate `json:"possible_settings"`
}

type GetSessionStartTimeResponseBody struct {
	SessionStartTime string `json:"session_start_time"`
}

type GetSessionLengthResponseBody struct {
	SessionLength string `json:"session_length"`
}

type SetSessionAudioFormatRequestBody struct {
	AudioFormat SessionAudioFormat `json:"audio_format"`
}

type SetSessionBitDepthRequestBody struct {
	BitDepth BitDepth `json:"bit_depth"`
}

type SetSessionInterleavedStateRequestBody struct {
	InterleavedState bool `json:"interleaved_state"`
}

type SetSessionTimeCodeRateRequestBody struct {
	TimeCodeRate SessionTimeCodeRate `json:"time_code_rate"`
}

type SetSessionFeetFramesRateRequestBody struct {
	FeetFramesRate SessionFeetFramesRate `json:"feet_frames_rate"`
}

type SetSessionStartTimeRequestBody struct {
	SessionStartTime         string             `json:"session_start_time"`
	TrackOffsetOpts          TrackOffsetOptions `json:"track_offset_opts"`
	MaintainRelativePosition bool               `json:"maintain_relative_position"`
}

type SetSessionLengthRequestBody struct {
	SessionLength string `json:"session_length"`
}

type GetTransportStateResponseBody struct {
	CurrentSetting   TransportState   `json:"current_setting"`
	PossibleSettings []TransportState `json:"possible_settings"`
}

type GetTransportArmedResponseBody struct {
	IsTransportArmed bool `json:"is_transport_armed"`
}

type GetPlaybackModeResponseBody struct {
	CurrentSettings  []PlaybackMode `json:"current_settings"`
	PossibleSettings []PlaybackMode `json:"possible_settings"`
}

type SetPlaybackModeRequestBody struct {
	PlaybackMode PlaybackMode `json:"playback_mode"`
}

type GetRecordModeResponseBody struct {
	CurrentSetting   RecordMode   `json:"current_setting"`
	PossibleSettings []RecordMode `json:"possible_settings"`
}

type SetRecordModeRequestBody struct {
	RecordMode   RecordMode `json:"record_mode"`
	ArmTransport bool       `json:"arm_transport"`
}

type CutSpecialRequestBody struct {
	AutomationDataOption AutomationDataOptions `json:"automation_data_option"`
}

type CopySpecialRequestBody struct {
	AutomationDataOption AutomationDataOptions `json:"automation_data_option"`
}

type ClearSpecialRequestBody struct {
	AutomationDataOption AutomationDataOptions `json:"automation_data_option"`
}

type PasteSpecialRequestBody struct {
	PasteSpecialOption PasteSpecialOptions `json:"paste_special_option"`
}

type SelectAllClipsOnTrackRequestBody struct {
	TrackName string `json:"track_name"`
}

type ExtendSelectionToTargetTracksRequestBody struct {
	TracksToExtendTo []string `json:"tracks_to_extend_to"`
}

type RefreshTargetAudioFilesRequestBody struct {
	FileList []string `json:"file_list"`
}

type TrackListInvertibleFilter struct {
	Filter     TrackListFilter `json:"filter"`
	IsInverted bool            `json:"is_inverted"`
}

type GetTrackListRequestBody struct {
	PageLimit            int32                       `json:"page_limit"`
	TrackFilterList      []TrackListInvertibleFilter `json:"track_filter_list"`
	IsFilterListAdditive bool                        `json:"is_filter_list_additive"`
}

type TrackAttributes struct {
	IsInactive          bool `json:"is_inactive"`
	IsHidden            bool `json:"is_hidden"`
	IsSelected          bool `json:"is_selected"`
	ContainsClips       bool `json:"contains_clips"`
	ContainsAutomation  bool `json:"contains_automation"`
	IsSoloed            bool `json:"is_soloed"`
	IsRecordEnabled     bool `json:"is_record_enabled"`
	IsInputMonitoringOn bool `json:"is_input_monitoring_on"`
	IsSmartDspOn        bool `json:"is_smart_dsp_on"`
	IsLocked            bool `json:"is_locked"`
	IsMuted             bool `json:"is_muted"`
	IsFrozen            bool `json:"is_frozen"`
	IsOpen              bool `json:"is_open"`
	IsOnline            bool `json:"is_online"`
}

type Track struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	ID              string          `json:"id"`
	Index           int32           `json:"index"`
	Color           string          `json:"color"`
	TrackAttributes TrackAttributes `json:"track_attributes"`
}

type GetTrackListResponseBody struct {
	TrackList []Track `json:"track_list"`
}

type CommandError struct {
	CommandErrorType CommandErrorType `json:"command_error_type"`
	Message          string           `json:"message"`
}
