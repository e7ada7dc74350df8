package ptslv1

import "fmt"

// TaskStatus is the outcome reported in a response header. Only
// StatusCompleted and StatusFailed are valid for synchronous commands;
// the remaining values are reserved by the protocol for task tracking.
type TaskStatus int32

const (
	StatusQueued                     TaskStatus = 0
	StatusPending                    TaskStatus = 1
	StatusInProgress                 TaskStatus = 2
	StatusCompleted                  TaskStatus = 3
	StatusFailed                     TaskStatus = 4
	StatusWaitingForUserInput        TaskStatus = 5
	StatusCompletedWithBadResponse   TaskStatus = 6
	StatusFailedWithBadErrorResponse TaskStatus = 7
)

var taskStatusNames = map[TaskStatus]string{
	StatusQueued:                     "Queued",
	StatusPending:                    "Pending",
	StatusInProgress:                 "InProgress",
	StatusCompleted:                  "Completed",
	StatusFailed:                     "Failed",
	StatusWaitingForUserInput:        "WaitingForUserInput",
	StatusCompletedWithBadResponse:   "CompletedWithBadResponse",
	StatusFailedWithBadErrorResponse: "FailedWithBadErrorResponse",
}

func (s TaskStatus) String() string {
	if name, ok := taskStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TaskStatus(%d)", int32(s))
}
