package client

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
	"github.com/louisbranch/ptsl/ops"
)

func TestAuditTranscriptNumbersEveryLine(t *testing.T) {
	var buf bytes.Buffer
	ft := newFakeTransport()
	ft.respond(ptslv1.CommandRegisterConnection, ptslv1.StatusCompleted,
		`{"session_id":"sess-1","is_authorized":true,"message":""}`, "")
	ft.respond(ptslv1.CommandGetSessionName, ptslv1.StatusCompleted,
		`{"session_name":"demo"}`, "")

	c, err := Connect(context.Background(), ft, Config{
		Auditing:  true,
		AuditSink: &buf,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := c.Run(context.Background(), &ops.GetSessionName{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	transcript := buf.String()
	if !strings.Contains(transcript, "Started Command GetSessionName") {
		t.Fatalf("missing start line in transcript:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Finished Command") {
		t.Fatalf("missing finish line in transcript:\n%s", transcript)
	}
	if !strings.Contains(transcript, strings.Repeat("*", 60)) {
		t.Fatalf("missing separator in transcript:\n%s", transcript)
	}

	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "0001") {
			t.Fatalf("expected sequence prefix 0001, got line %q", line)
		}
	}
}

func TestAuditSequenceAdvancesWhenOutputDisabled(t *testing.T) {
	var buf bytes.Buffer
	ft := newFakeTransport()
	ft.respond(ptslv1.CommandRegisterConnection, ptslv1.StatusCompleted,
		`{"session_id":"sess-1","is_authorized":true,"message":""}`, "")
	c, err := Connect(context.Background(), ft, Config{AuditSink: &buf})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := c.Run(context.Background(), &ops.Cut{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := c.Run(context.Background(), &ops.Copy{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("disabled auditor wrote output: %q", buf.String())
	}
	if got := c.CommandSequence(); got != 3 {
		t.Fatalf("expected sequence 3 after two runs, got %d", got)
	}
}

func TestAuditRecordsRepairStages(t *testing.T) {
	var buf bytes.Buffer
	ft := newFakeTransport()
	ft.respond(ptslv1.CommandRegisterConnection, ptslv1.StatusCompleted,
		`{"session_id":"sess-1","is_authorized":true,"message":""}`, "")
	c, err := Connect(context.Background(), ft, Config{
		Auditing:  true,
		AuditSink: &buf,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	buf.Reset()

	op := &ops.CreateSession{Request: &ptslv1.CreateSessionRequestBody{
		SessionName: "demo",
		SampleRate:  ptslv1.SR_48000,
	}}
	if err := c.Run(context.Background(), op); err != nil {
		t.Fatalf("run: %v", err)
	}

	transcript := buf.String()
	if !strings.Contains(transcript, `Created JSON for request message:`) {
		t.Fatalf("missing pre-repair line:\n%s", transcript)
	}
	if !strings.Contains(transcript, `"sample_rate":"SR_48000"`) {
		t.Fatalf("pre-repair body not recorded:\n%s", transcript)
	}
	if !strings.Contains(transcript, `Re-formatted JSON for request message:`) {
		t.Fatalf("missing post-repair line:\n%s", transcript)
	}
	if !strings.Contains(transcript, `"sample_rate":2`) {
		t.Fatalf("post-repair body not recorded:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Received empty JSON response") {
		t.Fatalf("missing empty-response line:\n%s", transcript)
	}
}
