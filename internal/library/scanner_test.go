package library

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanner_ClassifiesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "asr.json", `{"segments":[{"start":0,"end":2,"speaker":"agent","text":"Hello"}]}`)
	writeFile(t, dir, "pasted.txt", "[0:05] AGENT (Riya): Hello\n[0:09] USER: Hi")
	writeFile(t, dir, "notes.md", "not a transcript")

	entries, err := NewScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	bySource := map[string]Entry{}
	for _, e := range entries {
		bySource[e.Source] = e
	}

	asr, ok := bySource["whisper-asr"]
	if !ok {
		t.Fatalf("no whisper-asr entry in %+v", entries)
	}
	if asr.Turns != 1 || asr.DurationS != 2 {
		t.Errorf("asr entry = %+v", asr)
	}

	text, ok := bySource["manual-upload"]
	if !ok {
		t.Fatalf("no manual-upload entry in %+v", entries)
	}
	if text.Turns != 2 {
		t.Errorf("text entry = %+v", text)
	}
}

func TestScanner_MissingDir(t *testing.T) {
	if _, err := NewScanner().Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestDecode(t *testing.T) {
	v := Decode("call.json", []byte(`{"segments":[]}`))
	if _, ok := v.(map[string]any); !ok {
		t.Errorf("expected decoded map, got %T", v)
	}

	v = Decode("call.txt", []byte("AGENT: hi"))
	if _, ok := v.(string); !ok {
		t.Errorf("expected string, got %T", v)
	}

	// Malformed JSON falls back to text so normalization still returns a doc.
	v = Decode("call.json", []byte("{not json"))
	if _, ok := v.(string); !ok {
		t.Errorf("expected string fallback, got %T", v)
	}
}
