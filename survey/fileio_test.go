package survey

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 0, "hello"},
		{"  padded  ", 10, "padded"},
		{"hello world", 5, "hello…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Fatalf("Truncate(%q, %d) got=%q want=%q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")
	if err := WriteFileAtomic(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "content\n" {
		t.Fatalf("content got=%q", b)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp_survey_") {
			t.Fatalf("leftover temp file: %s", e.Name())
		}
	}

	// Overwrite works; trailing newline is not doubled.
	if err := WriteFileAtomic(path, []byte("second\n"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, _ = os.ReadFile(path)
	if string(b) != "second\n" {
		t.Fatalf("overwrite content got=%q", b)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if FileExists(path) {
		t.Fatalf("missing file reported as existing")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(path) {
		t.Fatalf("existing file reported as missing")
	}
}

func TestWriteJSONAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	if err := WriteJSONAtomic(path, map[string]int{"n": 1}, true); err != nil {
		t.Fatalf("WriteJSONAtomic: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["n"] != 1 {
		t.Fatalf("got=%v", got)
	}
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rows.jsonl")
	rows := []Classified{
		{Question: "q", Response: "a", Sentiment: Positive, Score: 0.5, Confidence: 0.8},
		{Question: "q", Response: "b", Sentiment: Negative, Score: -0.6, Confidence: 0.95},
	}
	if err := WriteJSONL(path, rows); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines got=%d want=2", len(lines))
	}
	var row Classified
	if err := json.Unmarshal([]byte(lines[1]), &row); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if row.Response != "b" || row.Sentiment != Negative {
		t.Fatalf("row got=%+v", row)
	}

	if err := WriteJSONL("", rows); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
