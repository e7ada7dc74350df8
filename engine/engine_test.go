package engine

import (
	"context"
	"testing"

	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
	"github.com/louisbranch/ptsl/ops"
)

// fakeRunner records the operations it receives and injects canned
// responses into them before returning.
type fakeRunner struct {
	ran    []ops.Operation
	inject func(op ops.Operation)
	err    error
	closed bool
}

func (f *fakeRunner) Run(ctx context.Context, op ops.Operation) error {
	f.ran = append(f.ran, op)
	if f.err != nil {
		return f.err
	}
	if f.inject != nil {
		f.inject(op)
	}
	return nil
}

func (f *fakeRunner) Close() error {
	f.closed = true
	return nil
}

func TestPTSLVersion(t *testing.T) {
	r := &fakeRunner{inject: func(op ops.Operation) {
		op.(*ops.GetPTSLVersion).Response = &ptslv1.GetPTSLVersionResponseBody{Version: 1}
	}}
	eng := New(r)

	got, err := eng.PTSLVersion(context.Background())
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected version 1, got %d", got)
	}
}

func TestPTSLVersionEmptyResponse(t *testing.T) {
	eng := New(&fakeRunner{})

	if _, err := eng.PTSLVersion(context.Background()); err == nil {
		t.Fatal("expected error for missing response body")
	}
}

func TestCreateSessionAppliesDefaults(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)

	err := eng.CreateSession(context.Background(), "demo", "/sessions", CreateSessionOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	op := r.ran[0].(*ops.CreateSession)
	req := op.Request
	if req.SessionName != "demo" || req.SessionLocation != "/sessions" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.FileType != ptslv1.SAF_WAVE {
		t.Fatalf("expected default file type, got %v", req.FileType)
	}
	if req.SampleRate != ptslv1.SR_48000 {
		t.Fatalf("expected default sample rate, got %v", req.SampleRate)
	}
	if req.BitDepth != ptslv1.Bit24 {
		t.Fatalf("expected default bit depth, got %v", req.BitDepth)
	}
	if req.InputOutputSettings != ptslv1.IO_Last {
		t.Fatalf("expected default io settings, got %v", req.InputOutputSettings)
	}
}

func TestCreateSessionKeepsExplicitSettings(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)

	opts := CreateSessionOptions{
		FileType:   ptslv1.SAF_AIFF,
		SampleRate: ptslv1.SR_96000,
		BitDepth:   ptslv1.Bit32Float,
		IOSetting:  ptslv1.IO_StereoMix,
	}
	if err := eng.CreateSession(context.Background(), "demo", "/sessions", opts); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := r.ran[0].(*ops.CreateSession).Request
	if req.FileType != ptslv1.SAF_AIFF || req.SampleRate != ptslv1.SR_96000 {
		t.Fatalf("explicit settings overwritten: %+v", req)
	}
}

func TestCreateSessionFromTemplate(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)

	err := eng.CreateSessionFromTemplate(context.Background(),
		"Post Production", "Dialogue", "demo", "/sessions", CreateSessionOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := r.ran[0].(*ops.CreateSession).Request
	if !req.CreateFromTemplate {
		t.Fatal("expected template flag")
	}
	if req.TemplateGroup != "Post Production" || req.TemplateName != "Dialogue" {
		t.Fatalf("unexpected template fields %+v", req)
	}
}

func TestCreateSessionFromAAF(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)

	err := eng.CreateSessionFromAAF(context.Background(),
		"demo", "/sessions", "/import/reel.aaf", CreateSessionOptions{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := r.ran[0].(*ops.CreateSession).Request
	if !req.CreateFromAAF || req.PathToAAF != "/import/reel.aaf" {
		t.Fatalf("unexpected aaf fields %+v", req)
	}
}

func TestSessionSampleRateReportsHertz(t *testing.T) {
	r := &fakeRunner{inject: func(op ops.Operation) {
		op.(*ops.GetSessionSampleRate).Response = &ptslv1.GetSessionSampleRateResponseBody{
			SampleRate: ptslv1.SR_96000,
		}
	}}
	eng := New(r)

	got, err := eng.SessionSampleRate(context.Background())
	if err != nil {
		t.Fatalf("sample rate: %v", err)
	}
	if got != 96000 {
		t.Fatalf("expected 96000, got %d", got)
	}
}

func TestTrackListDefaultsToAllTracks(t *testing.T) {
	r := &fakeRunner{inject: func(op ops.Operation) {
		op.(*ops.GetTrackList).Response = &ptslv1.GetTrackListResponseBody{
			TrackList: []ptslv1.Track{{Name: "Kick"}, {Name: "Snare"}},
		}
	}}
	eng := New(r)

	tracks, err := eng.TrackList(context.Background(), 100, nil)
	if err != nil {
		t.Fatalf("track list: %v", err)
	}
	if len(tracks) != 2 || tracks[0].Name != "Kick" {
		t.Fatalf("unexpected tracks %+v", tracks)
	}

	req := r.ran[0].(*ops.GetTrackList).Request
	if len(req.TrackFilterList) != 1 || req.TrackFilterList[0].Filter != ptslv1.TLF_All {
		t.Fatalf("expected all-tracks filter, got %+v", req.TrackFilterList)
	}
	if req.PageLimit != 100 {
		t.Fatalf("expected page limit 100, got %d", req.PageLimit)
	}
}

func TestSettersBuildTypedRequests(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)
	ctx := context.Background()

	if err := eng.SetPlaybackMode(ctx, ptslv1.PM_Loop); err != nil {
		t.Fatalf("set playback mode: %v", err)
	}
	if err := eng.SetRecordMode(ctx, ptslv1.RM_Destructive, true); err != nil {
		t.Fatalf("set record mode: %v", err)
	}
	if err := eng.PasteSpecial(ctx, ptslv1.PSO_Merge); err != nil {
		t.Fatalf("paste special: %v", err)
	}

	pb := r.ran[0].(*ops.SetPlaybackMode).Request
	if pb.PlaybackMode != ptslv1.PM_Loop {
		t.Fatalf("unexpected playback mode %v", pb.PlaybackMode)
	}
	rm := r.ran[1].(*ops.SetRecordMode).Request
	if rm.RecordMode != ptslv1.RM_Destructive || !rm.ArmTransport {
		t.Fatalf("unexpected record mode request %+v", rm)
	}
	ps := r.ran[2].(*ops.PasteSpecial).Request
	if ps.PasteSpecialOption != ptslv1.PSO_Merge {
		t.Fatalf("unexpected paste option %v", ps.PasteSpecialOption)
	}
}

func TestTransportTogglesSendBareCommands(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)
	ctx := context.Background()

	if err := eng.TogglePlayState(ctx); err != nil {
		t.Fatalf("toggle play state: %v", err)
	}
	if err := eng.ToggleRecordEnable(ctx); err != nil {
		t.Fatalf("toggle record enable: %v", err)
	}
	if err := eng.PlayHalfSpeed(ctx); err != nil {
		t.Fatalf("play half speed: %v", err)
	}
	if err := eng.RecordHalfSpeed(ctx); err != nil {
		t.Fatalf("record half speed: %v", err)
	}

	want := []ptslv1.CommandID{
		ptslv1.CommandTogglePlayState,
		ptslv1.CommandToggleRecordEnable,
		ptslv1.CommandPlayHalfSpeed,
		ptslv1.CommandRecordHalfSpeed,
	}
	if len(r.ran) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(r.ran))
	}
	for i, op := range r.ran {
		if op.CommandID() != want[i] {
			t.Fatalf("run %d: expected %s, got %s", i, want[i], op.CommandID())
		}
		if op.RequestBody() != nil {
			t.Fatalf("%s: expected no request body", op.CommandID())
		}
	}
}

func TestEngineErrorsPassThrough(t *testing.T) {
	want := context.DeadlineExceeded
	eng := New(&fakeRunner{err: want})

	if _, err := eng.SessionName(context.Background()); err != want {
		t.Fatalf("expected %v, got %v", want, err)
	}
	if err := eng.Cut(context.Background()); err != want {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestEngineCloseClosesRunner(t *testing.T) {
	r := &fakeRunner{}
	eng := New(r)

	if err := eng.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !r.closed {
		t.Fatal("runner not closed")
	}
}
