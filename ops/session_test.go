package ops

import (
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

func TestCreateSessionRepairRewritesEnumsAsOrdinals(t *testing.T) {
	op := &CreateSession{Request: &ptslv1.CreateSessionRequestBody{
		SessionName:         "demo",
		FileType:            ptslv1.SAF_WAVE,
		SampleRate:          ptslv1.SR_96000,
		BitDepth:            ptslv1.Bit24,
		InputOutputSettings: ptslv1.IO_Last,
		IsInterleaved:       true,
		SessionLocation:     "/tmp",
	}}

	raw, err := json.Marshal(op.RequestBody())
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	body := op.RepairRequestJSON(string(raw))

	for field, want := range map[string]int64{
		"file_type":             int64(ptslv1.SAF_WAVE),
		"sample_rate":           int64(ptslv1.SR_96000),
		"bit_depth":             int64(ptslv1.Bit24),
		"input_output_settings": int64(ptslv1.IO_Last),
	} {
		v := gjson.Get(body, field)
		if v.Type != gjson.Number || v.Int() != want {
			t.Fatalf("expected %s to be ordinal %d, got %s", field, want, v.Raw)
		}
	}
	if got := gjson.Get(body, "session_name").Str; got != "demo" {
		t.Fatalf("session_name disturbed: %q", got)
	}
}

func TestCreateSessionRepairLeavesUnknownNamesAlone(t *testing.T) {
	op := &CreateSession{}
	body := `{"file_type":"SAF_FLAC","sample_rate":"SR_48000"}`

	got := op.RepairRequestJSON(body)

	if v := gjson.Get(got, "file_type"); v.Str != "SAF_FLAC" {
		t.Fatalf("unknown name rewritten: %s", v.Raw)
	}
	if v := gjson.Get(got, "sample_rate"); v.Int() != int64(ptslv1.SR_48000) {
		t.Fatalf("known name not rewritten: %s", v.Raw)
	}
}

func TestGetSessionSampleRateRepairMapsLiteralHertz(t *testing.T) {
	op := &GetSessionSampleRate{}

	got := op.RepairResponseJSON(`{"sample_rate":48000}`)

	if v := gjson.Get(got, "sample_rate"); v.Str != "SR_48000" {
		t.Fatalf("expected symbolic name, got %s", v.Raw)
	}
}

func TestGetSessionSampleRateRepairLeavesSymbolicAlone(t *testing.T) {
	op := &GetSessionSampleRate{}
	body := `{"sample_rate":"SR_44100"}`

	if got := op.RepairResponseJSON(body); got != body {
		t.Fatalf("symbolic body rewritten: %s", got)
	}
}

func TestGetSessionSampleRateRepairLeavesUnknownRateAlone(t *testing.T) {
	op := &GetSessionSampleRate{}
	body := `{"sample_rate":22050}`

	if got := op.RepairResponseJSON(body); got != body {
		t.Fatalf("unknown rate rewritten: %s", got)
	}
}

func TestSampleRateResponseParsesAfterRepair(t *testing.T) {
	op := &GetSessionSampleRate{}
	clean := op.RepairResponseJSON(`{"sample_rate":96000}`)

	target := op.NewResponseBody()
	if err := json.Unmarshal([]byte(clean), target); err != nil {
		t.Fatalf("parse repaired body: %v", err)
	}
	op.OnResponseBody(target)

	if op.Response == nil || op.Response.SampleRate != ptslv1.SR_96000 {
		t.Fatalf("expected SR_96000, got %+v", op.Response)
	}
}

func TestBaseDefaults(t *testing.T) {
	var b Base

	if b.RequestBody() != nil {
		t.Fatal("expected no request body")
	}
	if b.NewResponseBody() != nil {
		t.Fatal("expected no declared response")
	}
	if got := b.RepairRequestJSON(`{"a":1}`); got != `{"a":1}` {
		t.Fatalf("request repair not identity: %s", got)
	}
	if got := b.RepairResponseJSON(`{"a":1}`); got != `{"a":1}` {
		t.Fatalf("response repair not identity: %s", got)
	}
	b.RecordStatus(ptslv1.StatusCompleted)
	if b.Status != ptslv1.StatusCompleted {
		t.Fatalf("status not recorded: %v", b.Status)
	}
}

func TestOperationsWithoutRequestSendNoBody(t *testing.T) {
	for _, op := range []Operation{
		&SaveSession{},
		&GetSessionName{},
		&CreateSession{},
		&OpenSession{},
		&ToggleRecordEnable{},
		&PlayHalfSpeed{},
		&RecordHalfSpeed{},
	} {
		if body := op.RequestBody(); body != nil {
			t.Fatalf("%s: expected nil request body, got %#v", op.CommandID(), body)
		}
	}
}
