package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesStripsTerminators(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"unix endings", "one\ntwo\nthree\n", []string{"one", "two", "three"}},
		{"no trailing newline", "one\ntwo", []string{"one", "two"}},
		{"crlf endings", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty file", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			lines, err := readLines(path)
			if err != nil {
				t.Fatalf("readLines() error = %v", err)
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("line count = %d, want %d", len(lines), len(tt.want))
			}
			for i := range lines {
				if string(lines[i]) != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, lines[i], tt.want[i])
				}
			}
		})
	}
}

func TestRowsToBytesTerminatesEveryLine(t *testing.T) {
	e, _ := newTestEditor(t, "a", "", "bc")
	if got := string(e.rowsToBytes()); got != "a\n\nbc\n" {
		t.Errorf("rowsToBytes() = %q, want %q", got, "a\n\nbc\n")
	}

	empty, _ := newTestEditor(t)
	if got := string(empty.rowsToBytes()); got != "" {
		t.Errorf("rowsToBytes() on empty document = %q, want \"\"", got)
	}
}

// Loading a file and saving it untouched reproduces the bytes, up to a
// single terminator after every line.
func TestLoadSaveRoundTrip(t *testing.T) {
	const content = "alpha\nbeta\n\ngamma\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	e, _ := newTestEditor(t)
	if err := e.OpenFile(path); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "copy.txt")
	e.filename = out
	if saved, err := e.Save(); err != nil || !saved {
		t.Fatalf("Save() = (%v, %v)", saved, err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("round trip = %q, want %q", got, content)
	}
}

func TestWriteFileBytesTruncatesStaleContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shrink.txt")
	if err := os.WriteFile(path, []byte("a much longer original file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeFileBytes(path, []byte("short\n")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short\n" {
		t.Errorf("file content = %q, want %q", got, "short\n")
	}
}
