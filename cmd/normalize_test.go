package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/calltrace/internal/transcript"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNormalizeCommand_Text(t *testing.T) {
	path := writeTemp(t, "call.txt", "[0:05] AGENT (Riya): Hello, how can I help?\n[0:09] USER: I want to cancel.")
	out := runCommand(t, "normalize", path, "--text")

	if !strings.Contains(out, "[0:05] Riya: Hello, how can I help?") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "[0:09] User: I want to cancel.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestNormalizeCommand_JSON(t *testing.T) {
	path := writeTemp(t, "call.json", `{"segments":[
		{"start":0,"end":5,"speaker":"system","text":"[Call ringing]"},
		{"start":5,"end":8,"speaker":"agent","speaker_profile":"Agent (Riya)","text":"Hello"}
	]}`)
	out := runCommand(t, "normalize", path)

	var doc transcript.Doc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}
	if doc.Metadata.Source != "whisper-asr" {
		t.Errorf("Source = %q", doc.Metadata.Source)
	}
	if len(doc.Turns) != 2 {
		t.Errorf("turns = %d", len(doc.Turns))
	}
	if doc.CallStartMs == nil || *doc.CallStartMs != 5000 {
		t.Errorf("CallStartMs = %v", doc.CallStartMs)
	}
}

func TestScoreCommand_DropsPreamble(t *testing.T) {
	path := writeTemp(t, "call.json", `{"segments":[
		{"start":0,"end":5,"speaker":"system","text":"[Call ringing]"},
		{"start":5,"end":8,"speaker":"agent","text":"Hello"}
	]}`)
	out := runCommand(t, "score", path)

	var doc transcript.Doc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}
	if len(doc.Turns) != 1 {
		t.Fatalf("turns = %d, want 1", len(doc.Turns))
	}
	if doc.Turns[0].Role != transcript.RoleAgent {
		t.Errorf("retained role = %q", doc.Turns[0].Role)
	}
}

func TestNormalizeCommand_MissingFile(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"normalize", "/does/not/exist.txt"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for missing file")
	}
}
