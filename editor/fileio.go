package editor

import (
	"bufio"
	"fmt"
	"os"
	"slices"
)

/*** file i/o ***/

// readLines loads path as a sequence of lines with terminators
// stripped. Each returned line owns its bytes.
func readLines(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		// The scanner strips '\n'; drop any '\r' left by CRLF files.
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		lines = append(lines, slices.Clone(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// writeFileBytes writes buf to path, truncating to the exact length.
func writeFileBytes(path string, buf []byte) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		return err
	}
	n, err := file.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("partial write: %d/%d bytes", n, len(buf))
	}
	return nil
}

// rowsToBytes flattens the document for saving: every line is followed
// by a single '\n', including the last.
func (e *Editor) rowsToBytes() []byte {
	total := 0
	for _, r := range e.rows {
		total += len(r.chars) + 1
	}

	buf := make([]byte, 0, total)
	for _, r := range e.rows {
		buf = append(buf, r.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// OpenFile replaces the document with the contents of path and resets
// the cursor and viewport. On a load error the editor is left with an
// empty buffer named after the file; the error is reported by the
// caller as a status message.
func (e *Editor) OpenFile(path string) error {
	e.filename = path
	e.rows = nil
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.dirty = false

	lines, err := readLines(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		e.appendLine(line)
	}
	e.dirty = false
	return nil
}
