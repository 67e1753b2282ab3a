// Package editor implements the document model, cursor movement, the
// key dispatch loop, and the render pipeline of the minano editor. The
// terminal itself sits behind terminal.Terminal so the whole package
// can be driven by scripted input in tests.
package editor

import (
	"fmt"
	"log"
	"time"

	"minano/terminal"
)

/*** data ***/

// Editor represents the full editor state: one document, one cursor,
// one viewport.
type Editor struct {
	term terminal.Terminal

	cx, cy     int // cursor column and row, in document coordinates
	rowOffset  int
	colOffset  int
	screenRows int
	screenCols int

	rows     []row
	dirty    bool
	filename string

	statusMessage     string
	statusMessageTime time.Time

	quit bool
}

// New creates an editor on the given terminal. The screen size is
// queried when Run enters raw mode.
func New(term terminal.Terminal) *Editor {
	return &Editor{term: term}
}

/*** init & main loop ***/

func (e *Editor) refreshSize() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	if rows < 3 {
		rows = 3
	}
	e.screenRows = rows - 2 // status bar and message bar
	e.screenCols = cols
	return nil
}

// checkResize picks up window size changes between frames. Failures are
// ignored; the previous dimensions stay in effect.
func (e *Editor) checkResize() {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return
	}
	if rows < 3 {
		rows = 3
	}
	if rows-2 == e.screenRows && cols == e.screenCols {
		return
	}
	e.screenRows = rows - 2
	e.screenCols = cols
}

// Run enters raw mode and drives the draw/read/dispatch loop until the
// exit command or a fatal terminal error. Raw mode is restored on every
// return path.
func (e *Editor) Run(path string) error {
	if err := e.term.EnableRawMode(); err != nil {
		return err
	}
	defer e.term.DisableRawMode()

	if err := e.refreshSize(); err != nil {
		return err
	}

	if path != "" {
		if err := e.OpenFile(path); err != nil {
			// Non-fatal: start with an empty buffer named after the file.
			e.SetStatusMessage("Could not open: %v", err)
			log.Printf("open %s: %v", path, err)
		}
	}

	e.SetStatusMessage("Ctrl-S: Save | Ctrl-O: Open | Ctrl-X: Exit")

	for !e.quit {
		e.checkResize()
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		if err := e.ProcessKeypress(); err != nil {
			return err
		}
	}

	_, err := e.term.Write([]byte(CLEAR_SCREEN + CURSOR_HOME))
	return err
}

/*** editor operations ***/

func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rows[e.cy].insertChar(e.cx, c)
	e.cx++
	e.dirty = true
}

// InsertNewline splits the current line at the cursor. The prefix stays
// in place, the suffix becomes a new owned row below, and the cursor
// moves to its start.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		e.insertRow(e.cy+1, e.rows[e.cy].chars[e.cx:])
		r := &e.rows[e.cy]
		r.chars = r.chars[:e.cx]
	}
	e.cy++
	e.cx = 0
	e.dirty = true
}

// DeleteChar removes the byte before the cursor, joining the current
// line onto the previous one when the cursor sits at column 0. A no-op
// at the very start of the document.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.rows[e.cy].deleteChar(e.cx - 1)
		e.cx--
	} else {
		e.cx = len(e.rows[e.cy-1].chars)
		e.rows[e.cy-1].appendBytes(e.rows[e.cy].chars)
		e.deleteRow(e.cy)
		e.cy--
	}
	e.dirty = true
}

/*** input ***/

func (e *Editor) MoveCursor(key int) {
	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case ARROW_RIGHT:
		if e.cy < len(e.rows) {
			if e.cx < len(e.rows[e.cy].chars) {
				e.cx++
			} else {
				e.cy++
				e.cx = 0
			}
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	// Snap the column onto the new line.
	rowLen := 0
	if e.cy < len(e.rows) {
		rowLen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// ProcessKeypress reads one logical key and dispatches it. A non-nil
// error is a fatal terminal failure; everything else is handled in
// place.
func (e *Editor) ProcessKeypress() error {
	key, err := readKey(e.term)
	if err != nil {
		return err
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('s'):
		if _, err := e.Save(); err != nil {
			return err
		}

	case withControlKey('o'):
		if err := e.OpenPrompt(); err != nil {
			return err
		}

	case withControlKey('x'):
		if err := e.Exit(); err != nil {
			return err
		}

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		e.DeleteChar()

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case PAGE_UP:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_UP)
		}

	case PAGE_DOWN:
		e.cy = min(e.rowOffset+e.screenRows-1, len(e.rows))
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_DOWN)
		}

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case '\x1b':
		// Bare escape and unrecognized sequences are ignored.

	default:
		if key < 128 && !isControl(byte(key)) {
			e.InsertChar(byte(key))
		}
		// Unbound control bytes are ignored.
	}
	return nil
}

/*** protocols ***/

// Save writes the document to its filename, prompting for one first if
// the buffer is unnamed. The bool reports whether a file was actually
// written; cancelling the filename prompt aborts silently.
func (e *Editor) Save() (bool, error) {
	if e.filename == "" {
		name, err := e.prompt("Save as: %s (ESC to cancel)")
		if err != nil {
			return false, err
		}
		if name == "" {
			return false, nil
		}
		e.filename = name
	}

	buf := e.rowsToBytes()
	if err := writeFileBytes(e.filename, buf); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		log.Printf("save %s: %v", e.filename, err)
		return false, nil
	}

	e.dirty = false
	e.SetStatusMessage("%d bytes written to %s", len(buf), e.filename)
	return true, nil
}

// OpenPrompt asks for a path and replaces the document with its
// contents. The current buffer is discarded without a save prompt.
func (e *Editor) OpenPrompt() error {
	name, err := e.prompt("Open file: %s")
	if err != nil || name == "" {
		return err
	}
	if err := e.OpenFile(name); err != nil {
		e.SetStatusMessage("Could not open: %v", err)
		return nil
	}
	e.SetStatusMessage("Opened %s", name)
	return nil
}

// Exit terminates the main loop. A dirty buffer asks whether to save
// first; cancelling the save-as sub-prompt aborts the exit and returns
// to editing.
func (e *Editor) Exit() error {
	if e.dirty {
		answer, err := e.prompt("Save changes before exit? (y/N): %s")
		if err != nil {
			return err
		}
		if len(answer) > 0 && (answer[0] == 'y' || answer[0] == 'Y') {
			saved, err := e.Save()
			if err != nil {
				return err
			}
			if !saved {
				return nil
			}
		}
	}
	e.quit = true
	return nil
}

/*** status ***/

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}
