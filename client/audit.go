package client

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// auditor writes the sequence-numbered command transcript. Each lifecycle
// event of one run becomes one line; the sequence number advances once per
// completed command so a transcript can be correlated across runs. The
// counter advances even when output is disabled.
type auditor struct {
	enabled   bool
	out       io.Writer
	commandSN int
}

func newAuditor(enabled bool, out io.Writer) *auditor {
	if out == nil {
		out = os.Stderr
	}
	return &auditor{enabled: enabled, out: out, commandSN: 1}
}

func (a *auditor) emit(format string, args ...any) {
	if !a.enabled {
		return
	}
	ts := time.Now().Format("[2006-01-02 15:04:05]")
	fmt.Fprintf(a.out, "%04d%s %s\n", a.commandSN, ts, fmt.Sprintf(format, args...))
}

func (a *auditor) runCalled(cmd ptslv1.CommandID) {
	a.emit("Started Command %s (%d)", cmd, int32(cmd))
}

func (a *auditor) requestJSONBeforeRepair(body string) {
	a.emit("Created JSON for request message: %s", body)
}

func (a *auditor) requestJSONAfterRepair(body string) {
	a.emit("Re-formatted JSON for request message: %s", body)
}

func (a *auditor) responseJSONBeforeRepair(body string) {
	a.emit("Received JSON response body: %s", body)
}

func (a *auditor) responseJSONAfterRepair(body string) {
	a.emit("Re-formatted JSON response body: %s", body)
}

func (a *auditor) responseWasEmpty() {
	a.emit("Received empty JSON response")
}

func (a *auditor) runReturning() {
	a.emit("Finished Command")
	a.emit("%s\n", strings.Repeat("*", 60))
	a.commandSN++
}
