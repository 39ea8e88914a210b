package ai

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
)

type failingCompleter struct{ calls int }

func (f *failingCompleter) Name() string { return "hf" }

func (f *failingCompleter) Complete(ctx context.Context, prompt string) (*models.Completion, error) {
	f.calls++
	return nil, utils.NewError(utils.KindUpstreamFailure, "timeout")
}

func newLogs(t *testing.T) recordsRepo.QueryLogRepository {
	t.Helper()
	store, err := recordsRepo.NewStore(context.Background(), recordsRepo.NewMemorySnapshotBackend(nil), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return recordsRepo.NewQueryLogRepo(store)
}

func TestHuggingFaceCompleterParsesAndStripsEcho(t *testing.T) {
	var gotAuth string
	var gotBody hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode([]map[string]string{{"generated_text": gotBody.Inputs + " Bail is a conditional release."}})
	}))
	defer srv.Close()

	hf := NewHuggingFaceCompleter("tok", "google/flan-t5-base", time.Second).WithBaseURL(srv.URL)
	out, err := hf.Complete(context.Background(), "Question: what is bail?")
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody.Parameters.MaxNewTokens != 180 || gotBody.Parameters.Temperature != 0.3 {
		t.Errorf("parameters = %+v", gotBody.Parameters)
	}
	if out.Text != "Bail is a conditional release." || out.Model != "google/flan-t5-base" {
		t.Fatalf("unexpected completion %+v", out)
	}
}

func TestParseHFOutputShapes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`[{"generated_text":"a"}]`, "a"},
		{`[{"summary_text":"b"}]`, "b"},
		{`{"generated_text":"c"}`, "c"},
		{`[]`, ""},
	}
	for _, tt := range tests {
		got, err := parseHFOutput([]byte(tt.raw))
		if err != nil || got != tt.want {
			t.Errorf("parseHFOutput(%s) = %q, %v", tt.raw, got, err)
		}
	}
}

func TestHuggingFaceCompleterBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	hf := NewHuggingFaceCompleter("tok", "m", time.Second).WithBaseURL(srv.URL)
	_, err := hf.Complete(context.Background(), "x")
	if utils.KindOf(err) != utils.KindUpstreamFailure {
		t.Fatalf("got %v, want upstream failure", err)
	}
}

func TestFallbackCompleter(t *testing.T) {
	ctx := context.Background()

	none := NewFallbackCompleter(nil, nil)
	out, err := none.Complete(ctx, BuildPrompt("what is the limitation for appeal?"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Model != "LLM-stub" || !strings.HasPrefix(out.Text, "Limitation periods vary") {
		t.Fatalf("no-remote fallback: %+v", out)
	}

	primary := &failingCompleter{}
	fb := NewFallbackCompleter(primary, zap.NewNop())
	out, err = fb.Complete(ctx, BuildPrompt("steps for a divorce petition"))
	if err != nil {
		t.Fatalf("upstream failure leaked: %v", err)
	}
	if primary.calls != 1 || out.Model != "hf-fallback" || !strings.HasPrefix(out.Text, "Typical divorce steps") {
		t.Fatalf("fallback: calls=%d %+v", primary.calls, out)
	}

	out, _ = fb.Complete(ctx, BuildPrompt("is a verbal contract valid?"))
	if out.Text != utils.LegalDisclaimer {
		t.Fatalf("default answer: %q", out.Text)
	}
}

func TestAssistantGuardAndLog(t *testing.T) {
	ctx := context.Background()
	logs := newLogs(t)
	svc := NewAssistantService(NewFallbackCompleter(nil, nil), logs)

	resp, err := svc.Ask(ctx, "10.0.0.1", "what's the weather tomorrow?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Model != "policy-guard" {
		t.Fatalf("non-legal query answered: %+v", resp)
	}

	resp, err = svc.Ask(ctx, "10.0.0.1", "How do I get bail?")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Model != "LLM-stub" || resp.Answer == "" {
		t.Fatalf("legal query: %+v", resp)
	}

	entries, _ := logs.List(ctx)
	if len(entries) != 1 || entries[0].Path != AssistantPath || entries[0].Query != "How do I get bail?" || entries[0].IP != "10.0.0.1" {
		t.Fatalf("log entries: %+v", entries)
	}

	if _, err := svc.Ask(ctx, "10.0.0.1", ""); utils.KindOf(err) != utils.KindInvalidInput {
		t.Fatalf("empty query: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	svc := NewMLService(nil, nil, nil)
	ctx := context.Background()

	short := strings.Repeat("a", 220)
	out, err := svc.Summarize(ctx, short)
	if err != nil || out.Summary != short || out.Model != "LegalT5-stub" {
		t.Fatalf("short text: %+v %v", out, err)
	}

	long := strings.Repeat("b", 221)
	out, _ = svc.Summarize(ctx, long)
	if out.Summary != strings.Repeat("b", 200)+"…" {
		t.Fatalf("long text summary length %d", len([]rune(out.Summary)))
	}

	if _, err := svc.Summarize(ctx, ""); utils.KindOf(err) != utils.KindInvalidInput {
		t.Fatalf("empty text: %v", err)
	}

	withFailing := NewMLService(&failingCompleter{}, nil, zap.NewNop())
	out, err = withFailing.Summarize(ctx, long)
	if err != nil || out.Model != "LegalT5-stub" {
		t.Fatalf("failing completer not recovered: %+v %v", out, err)
	}
}

func TestHash(t *testing.T) {
	svc := NewMLService(nil, nil, nil)
	out, err := svc.Hash("abc", "")
	if err != nil {
		t.Fatal(err)
	}
	if out.Algorithm != "sha256" || out.Hash != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("sha256: %+v", out)
	}
	out, err = svc.Hash("abc", "blake2b")
	if err != nil || out.Algorithm != "blake2b-256" || len(out.Hash) != 64 {
		t.Fatalf("blake2b: %+v %v", out, err)
	}
	if _, err := svc.Hash("abc", "md5"); utils.KindOf(err) != utils.KindInvalidInput {
		t.Fatalf("md5 accepted: %v", err)
	}
}

func TestTranslateDefaultsTarget(t *testing.T) {
	svc := NewMLService(nil, nil, nil)
	out, _ := svc.Translate(context.Background(), "namaste", "")
	if out.Target != "en" || out.Translated != "namaste" || out.Model != "MarianMT-stub" {
		t.Fatalf("translate: %+v", out)
	}
}

func wavBytes(sampleRate uint32, channels uint16) []byte {
	buf := make([]byte, 44)
	copy(buf[0:], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], 36)
	copy(buf[8:], "WAVE")
	copy(buf[12:], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:], 16)
	binary.LittleEndian.PutUint16(buf[20:], 1)
	binary.LittleEndian.PutUint16(buf[22:], channels)
	binary.LittleEndian.PutUint32(buf[24:], sampleRate)
	copy(buf[36:], "data")
	return buf
}

func TestParseWaveHeader(t *testing.T) {
	h, err := parseWaveHeader(wavBytes(16000, 1))
	if err != nil {
		t.Fatal(err)
	}
	if h.SampleRate != 16000 || h.NumChannels != 1 {
		t.Fatalf("header: %+v", h)
	}
	if _, err := parseWaveHeader([]byte("short")); err == nil {
		t.Fatal("short input accepted")
	}
	bad := wavBytes(8000, 1)
	copy(bad[0:], "RIFX")
	if _, err := parseWaveHeader(bad); err == nil {
		t.Fatal("non-RIFF accepted")
	}
}

type brokenTranscriber struct{}

func (brokenTranscriber) Transcribe(context.Context, []byte, string) (*models.Transcript, error) {
	return nil, errors.New("quota exceeded")
}

func TestFallbackTranscriber(t *testing.T) {
	out, err := FallbackTranscriber{Primary: brokenTranscriber{}}.Transcribe(context.Background(), nil, "")
	if err != nil || out.Model != "Whisper-stub" || out.Text != "Transcription placeholder" {
		t.Fatalf("fallback transcriber: %+v %v", out, err)
	}
}
