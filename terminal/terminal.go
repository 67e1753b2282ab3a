// Package terminal owns the raw-mode terminal the editor runs on:
// entering and restoring raw mode, timed single-byte reads, window-size
// queries, and frame output.
package terminal

import (
	"errors"
	"fmt"
	"io"
)

// ErrReadTimeout is returned by ReadByte when the read window elapses
// with no input. Callers poll again, or treat an in-flight escape
// sequence as truncated.
var ErrReadTimeout = errors.New("terminal: read timed out")

// Terminal is the terminal device the editor talks to. The real
// implementation lives in posix.go; tests substitute a scripted mock.
type Terminal interface {
	io.Writer

	EnableRawMode() error
	DisableRawMode() error
	WindowSize() (rows, cols int, err error)
	ReadByte() (byte, error)
}

// parseCursorReport extracts rows and cols from an ESC[rows;colsR
// cursor position report. Used by the window-size fallback when the
// terminal does not answer the size ioctl.
func parseCursorReport(buf []byte) (int, int, error) {
	var rows, cols int
	if _, err := fmt.Sscanf(string(buf), "\x1b[%d;%dR", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor report %q: %w", buf, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("implausible cursor report %q", buf)
	}
	return rows, cols, nil
}
