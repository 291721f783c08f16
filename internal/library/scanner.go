// Package library discovers transcript files on disk and classifies their
// producer format, so the CLI can list and open them without the caller
// naming a format up front.
package library

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/grovetools/calltrace/internal/transcript"
)

// Entry describes one discovered transcript file.
type Entry struct {
	Path       string    `json:"path"`
	Source     string    `json:"source"`
	Turns      int       `json:"turns"`
	DurationS  float64   `json:"durationS"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Scanner finds transcript files under a directory.
type Scanner struct{}

// NewScanner creates a new library scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks dir for .json and .txt transcript files, normalizes each to
// classify its producer shape, and returns entries newest first. Files that
// cannot be read are skipped.
func (s *Scanner) Scan(dir string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".txt" {
			return nil
		}

		doc, ok := s.load(path)
		if !ok {
			return nil
		}

		info, err := d.Info()
		var modified time.Time
		if err == nil {
			modified = info.ModTime()
		}

		entries = append(entries, Entry{
			Path:       path,
			Source:     doc.Metadata.Source,
			Turns:      len(doc.Turns),
			DurationS:  doc.DurationS(),
			ModifiedAt: modified,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModifiedAt.After(entries[j].ModifiedAt)
	})
	return entries, nil
}

func (s *Scanner) load(path string) (transcript.Doc, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return transcript.Doc{}, false
	}
	return transcript.Normalize(Decode(path, data), transcript.Options{}), true
}

// Decode turns raw file bytes into the value handed to the normalizer:
// JSON files are decoded to untyped values, everything else is treated as
// pasted text.
func Decode(path string, data []byte) any {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var v any
		if err := json.Unmarshal(data, &v); err == nil {
			return v
		}
	}
	return string(data)
}
