package ptslv1

import "fmt"

// CommandErrorType is the normalized integer code carried by a failure
// response. The wire encodes it inconsistently (integer, numeric string,
// or symbolic name); the client layer normalizes before parsing.
type CommandErrorType int32

const (
	PT_UnknownError        CommandErrorType = 0
	PT_NoOpenedSession     CommandErrorType = 1
	PT_SessionPathInvalid  CommandErrorType = 2
	PT_FileNotFound        CommandErrorType = 3
	PT_InvalidParameter    CommandErrorType = 4
	PT_ParameterOutOfRange CommandErrorType = 5
	PT_UnsupportedCommand  CommandErrorType = 6
	PT_HostBusy            CommandErrorType = 7
	PT_NoTargetTrack       CommandErrorType = 8
	PT_TrackNotFound       CommandErrorType = 9
	PT_ClipNotFound        CommandErrorType = 10
	PT_ExportFailed        CommandErrorType = 11
	PT_ImportFailed        CommandErrorType = 12
	PT_AuthorizationFailed CommandErrorType = 13
	PT_SDKInternalError    CommandErrorType = 14
)

var commandErrorTypeNames = map[CommandErrorType]string{
	PT_UnknownError:        "PT_UnknownError",
	PT_NoOpenedSession:     "PT_NoOpenedSession",
	PT_SessionPathInvalid:  "PT_SessionPathInvalid",
	PT_FileNotFound:        "PT_FileNotFound",
	PT_InvalidParameter:    "PT_InvalidParameter",
	PT_ParameterOutOfRange: "PT_ParameterOutOfRange",
	PT_UnsupportedCommand:  "PT_UnsupportedCommand",
	PT_HostBusy:            "PT_HostBusy",
	PT_NoTargetTrack:       "PT_NoTargetTrack",
	PT_TrackNotFound:       "PT_TrackNotFound",
	PT_ClipNotFound:        "PT_ClipNotFound",
	PT_ExportFailed:        "PT_ExportFailed",
	PT_ImportFailed:        "PT_ImportFailed",
	PT_AuthorizationFailed: "PT_AuthorizationFailed",
	PT_SDKInternalError:    "PT_SDKInternalError",
}

var commandErrorTypeValues = invert(commandErrorTypeNames)

func (t CommandErrorType) String() string {
	if name, ok := commandErrorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CommandErrorType(%d)", int32(t))
}

// CommandErrorTypeValue resolves a symbolic error name to its code.
func CommandErrorTypeValue(name string) (CommandErrorType, bool) {
	v, ok := commandErrorTypeValues[name]
	return v, ok
}
