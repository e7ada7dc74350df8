// Package ptslv1 carries the versioned PTSL wire contract: command ids,
// task statuses, command error codes, typed request/response bodies, and
// the binary envelope encoding. The contract is maintained by hand against
// the published protocol document; field names are preserved verbatim
// because the host is strict about field presence and spelling.
package ptslv1

import "fmt"

// ProtocolVersion is the PTSL protocol version spoken by this package.
const ProtocolVersion = 1

// CommandID identifies one remote command.
type CommandID int32

const (
	CommandCreateSession                 CommandID = 0
	CommandOpenSession                   CommandID = 1
	CommandImport                        CommandID = 2
	CommandGetTrackList                  CommandID = 3
	CommandSelectAllClipsOnTrack         CommandID = 4
	CommandExtendSelectionToTargetTracks CommandID = 5
	CommandTrimToSelection               CommandID = 6
	CommandCreateFadesBasedOnPreset      CommandID = 7
	CommandRenameTargetTrack             CommandID = 8
	CommandConsolidateClip               CommandID = 9
	CommandExportClipsAsFiles            CommandID = 10
	CommandExportSelectedTracksAsAAFOMF  CommandID = 11
	CommandGetTaskStatus                 CommandID = 12
	CommandHostReadyCheck                CommandID = 13
	CommandRefreshTargetAudioFiles       CommandID = 14
	CommandRefreshAllModifiedAudioFiles  CommandID = 15
	CommandCut                           CommandID = 16
	CommandCopy                          CommandID = 17
	CommandPaste                         CommandID = 18
	CommandClear                         CommandID = 19
	CommandCutSpecial                    CommandID = 20
	CommandCopySpecial                   CommandID = 21
	CommandPasteSpecial                  CommandID = 22
	CommandClearSpecial                  CommandID = 23
	CommandGetSessionName                CommandID = 24
	CommandGetSessionPath                CommandID = 25
	CommandGetSessionSampleRate          CommandID = 26
	CommandGetSessionAudioFormat         CommandID = 27
	CommandGetSessionBitDepth            CommandID = 28
	CommandGetSessionInterleavedState    CommandID = 29
	CommandGetSessionTimeCodeRate        CommandID = 30
	CommandGetSessionFeetFramesRate      CommandID = 31
	CommandGetSessionStartTime           CommandID = 32
	CommandGetSessionLength              CommandID = 33
	CommandSetSessionAudioFormat         CommandID = 34
	CommandSetSessionBitDepth            CommandID = 35
	CommandSetSessionInterleavedState    CommandID = 36
	CommandSetSessionTimeCodeRate        CommandID = 37
	CommandSetSessionFeetFramesRate      CommandID = 38
	CommandSetSessionStartTime           CommandID = 39
	CommandSetSessionLength              CommandID = 40
	CommandGetTransportState             CommandID = 41
	CommandGetTransportArmed             CommandID = 42
	CommandGetPlaybackMode               CommandID = 43
	CommandSetPlaybackMode               CommandID = 44
	CommandGetRecordMode                 CommandID = 45
	CommandSetRecordMode                 CommandID = 46
	CommandTogglePlayState               CommandID = 47
	CommandSaveSession                   CommandID = 48
	CommandSaveSessionAs                 CommandID = 49
	CommandCloseSession                  CommandID = 50
	CommandExportSessionInfoAsText       CommandID = 51
	CommandGetPTSLVersion                CommandID = 52
	CommandAuthorizeConnection           CommandID = 53
	CommandRegisterConnection            CommandID = 54
	CommandToggleRecordEnable            CommandID = 55
	CommandPlayHalfSpeed                 CommandID = 56
	CommandRecordHalfSpeed               CommandID = 57
)

var commandNames = map[CommandID]string{
	CommandCreateSession:                 "CreateSession",
	CommandOpenSession:                   "OpenSession",
	CommandImport:                        "Import",
	CommandGetTrackList:                  "GetTrackList",
	CommandSelectAllClipsOnTrack:         "SelectAllClipsOnTrack",
	CommandExtendSelectionToTargetTracks: "ExtendSelectionToTargetTracks",
	CommandTrimToSelection:               "TrimToSelection",
	CommandCreateFadesBasedOnPreset:      "CreateFadesBasedOnPreset",
	CommandRenameTargetTrack:             "RenameTargetTrack",
	CommandConsolidateClip:               "ConsolidateClip",
	CommandExportClipsAsFiles:            "ExportClipsAsFiles",
	CommandExportSelectedTracksAsAAFOMF:  "ExportSelectedTracksAsAAFOMF",
	CommandGetTaskStatus:                 "GetTaskStatus",
	CommandHostReadyCheck:                "HostReadyCheck",
	CommandRefreshTargetAudioFiles:       "RefreshTargetAudioFiles",
	CommandRefreshAllModifiedAudioFiles:  "RefreshAllModifiedAudioFiles",
	CommandCut:                           "Cut",
	CommandCopy:                          "Copy",
	CommandPaste:                         "Paste",
	CommandClear:                         "Clear",
	CommandCutSpecial:                    "CutSpecial",
	CommandCopySpecial:                   "CopySpecial",
	CommandPasteSpecial:                  "PasteSpecial",
	CommandClearSpecial:                  "ClearSpecial",
	CommandGetSessionName:                "GetSessionName",
	CommandGetSessionPath:                "GetSessionPath",
	CommandGetSessionSampleRate:          "GetSessionSampleRate",
	CommandGetSessionAudioFormat:         "GetSessionAudioFormat",
	CommandGetSessionBitDepth:            "GetSessionBitDepth",
	CommandGetSessionInterleavedState:    "GetSessionInterleavedState",
	CommandGetSessionTimeCodeRate:        "GetSessionTimeCodeRate",
	CommandGetSessionFeetFramesRate:      "GetSessionFeetFramesRate",
	CommandGetSessionStartTime:           "GetSessionStartTime",
	CommandGetSessionLength:              "GetSessionLength",
	CommandSetSessionAudioFormat:         "SetSessionAudioFormat",
	CommandSetSessionBitDepth:            "SetSessionBitDepth",
	CommandSetSessionInterleavedState:    "SetSessionInterleavedState",
	CommandSetSessionTimeCodeRate:        "SetSessionTimeCodeRate",
	CommandSetSessionFeetFramesRate:      "SetSessionFeetFramesRate",
	CommandSetSessionStartTime:           "SetSessionStartTime",
	CommandSetSessionLength:              "SetSessionLength",
	CommandGetTransportState:             "GetTransportState",
	CommandGetTransportArmed:             "GetTransportArmed",
	CommandGetPlaybackMode:               "GetPlaybackMode",
	CommandSetPlaybackMode:               "SetPlaybackMode",
	CommandGetRecordMode:                 "GetRecordMode",
	CommandSetRecordMode:                 "SetRecordMode",
	CommandTogglePlayState:               "TogglePlayState",
	CommandSaveSession:                   "SaveSession",
	CommandSaveSessionAs:                 "SaveSessionAs",
	CommandCloseSession:                  "CloseSession",
	CommandExportSessionInfoAsText:       "ExportSessionInfoAsText",
	CommandGetPTSLVersion:                "GetPTSLVersion",
	CommandAuthorizeConnection:           "AuthorizeConnection",
	CommandRegisterConnection:            "RegisterConnection",
	CommandToggleRecordEnable:            "ToggleRecordEnable",
	CommandPlayHalfSpeed:                 "PlayHalfSpeed",
	CommandRecordHalfSpeed:               "RecordHalfSpeed",
}

func (c CommandID) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommandID(%d)", int32(c))
}
