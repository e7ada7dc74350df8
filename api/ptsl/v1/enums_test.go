package ptslv1

import (
	"encoding/json"
	"testing"
)

func TestEnumMarshalsSymbolicName(t *testing.T) {
	got, err := json.Marshal(SR_48000)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != `"SR_48000"` {
		t.Fatalf("expected symbolic name, got %s", got)
	}
}

func TestEnumUnmarshalsFromName(t *testing.T) {
	var rate SampleRate
	if err := json.Unmarshal([]byte(`"SR_96000"`), &rate); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rate != SR_96000 {
		t.Fatalf("expected SR_96000, got %v", rate)
	}
}

func TestEnumUnmarshalsFromOrdinal(t *testing.T) {
	var format SessionAudioFormat
	if err := json.Unmarshal([]byte(`2`), &format); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if format != SAF_AIFF {
		t.Fatalf("expected SAF_AIFF, got %v", format)
	}
}

func TestEnumRejectsUnknownName(t *testing.T) {
	var depth BitDepth
	if err := json.Unmarshal([]byte(`"Bit256"`), &depth); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestEnumStringFallsBackToOrdinal(t *testing.T) {
	if got := SampleRate(99).String(); got != "SampleRate(99)" {
		t.Fatalf("unexpected fallback string %q", got)
	}
}

func TestSampleRateHertz(t *testing.T) {
	if got := SR_48000.Hertz(); got != 48000 {
		t.Fatalf("expected 48000, got %d", got)
	}
	if got := SR_None.Hertz(); got != 0 {
		t.Fatalf("expected 0 for SR_None, got %d", got)
	}
}

func TestSampleRateFromHertz(t *testing.T) {
	rate, ok := SampleRateFromHertz(176400)
	if !ok || rate != SR_176400 {
		t.Fatalf("expected SR_176400, got %v (ok=%v)", rate, ok)
	}
	if _, ok := SampleRateFromHertz(12345); ok {
		t.Fatal("expected no match for 12345")
	}
}

func TestCommandErrorTypeValue(t *testing.T) {
	code, ok := CommandErrorTypeValue("PT_HostBusy")
	if !ok || code != PT_HostBusy {
		t.Fatalf("expected PT_HostBusy, got %v (ok=%v)", code, ok)
	}
	if _, ok := CommandErrorTypeValue("PT_NotAThing"); ok {
		t.Fatal("expected no match for unknown name")
	}
}

func TestCommandIDString(t *testing.T) {
	if got := CommandHostReadyCheck.String(); got != "HostReadyCheck" {
		t.Fatalf("unexpected command name %q", got)
	}
	if got := CommandID(999).String(); got != "CommandID(999)" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
