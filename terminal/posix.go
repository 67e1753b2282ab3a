//go:build linux

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type posixTerminal struct {
	in            *os.File
	out           *os.File
	originalState *term.State
	readBuf       [1]byte
}

// New returns a Terminal backed by stdin/stdout.
func New() Terminal {
	return &posixTerminal{in: os.Stdin, out: os.Stdout}
}

func (t *posixTerminal) EnableRawMode() error {
	if !term.IsTerminal(int(t.in.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	t.originalState = state

	// MakeRaw leaves reads fully blocking (VMIN=1). Switch to a polled
	// read with a tenth-of-a-second window so a lone ESC keypress can be
	// told apart from the head of an escape sequence.
	tio, err := unix.IoctlGetTermios(int(t.in.Fd()), unix.TCGETS)
	if err != nil {
		t.DisableRawMode()
		return fmt.Errorf("reading termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(int(t.in.Fd()), unix.TCSETS, tio); err != nil {
		t.DisableRawMode()
		return fmt.Errorf("setting read timeout: %w", err)
	}
	return nil
}

func (t *posixTerminal) DisableRawMode() error {
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.originalState)
	t.originalState = nil // Prevent multiple restoration attempts
	return err
}

func (t *posixTerminal) ReadByte() (byte, error) {
	n, err := t.in.Read(t.readBuf[:])
	if n == 1 {
		return t.readBuf[0], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		// VTIME expired with nothing to deliver.
		return 0, ErrReadTimeout
	}
	return 0, fmt.Errorf("reading keyboard input: %w", err)
}

func (t *posixTerminal) WindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	return t.cursorReportSize()
}

// cursorReportSize pushes the cursor to the bottom-right corner and asks
// the terminal where it ended up. Fallback for terminals whose size
// ioctl reports nothing useful.
func (t *posixTerminal) cursorReportSize() (int, int, error) {
	if _, err := t.out.WriteString("\x1b[999C\x1b[999B\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("querying cursor position: %w", err)
	}

	buf := make([]byte, 0, 32)
	for len(buf) < 32 {
		b, err := t.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, b)
		if b == 'R' {
			break
		}
	}
	return parseCursorReport(buf)
}

func (t *posixTerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
