package editor

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"minano/version"
)

/*** append buffer ***/

// appendBuffer collects one full output frame so the terminal receives
// a single write per refresh.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// scroll clamps the viewport offsets so the cursor cell stays inside
// the rendered rectangle. Offsets never go below zero.
func (e *Editor) scroll() {
	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.cx < e.colOffset {
		e.colOffset = e.cx
	}
	if e.cx >= e.colOffset+e.screenCols {
		e.colOffset = e.cx - e.screenCols + 1
	}
}

func (e *Editor) drawRows(abuf *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= len(e.rows) {
			if len(e.rows) == 0 && e.filename == "" && y == e.screenRows/3 {
				welcome := runewidth.Truncate("minano editor -- version "+version.Version, e.screenCols, "")
				padding := (e.screenCols - runewidth.StringWidth(welcome)) / 2
				if padding > 0 {
					abuf.appendString("~")
					padding--
				}
				for i := 0; i < padding; i++ {
					abuf.appendString(" ")
				}
				abuf.appendString(welcome)
			} else {
				abuf.appendString("~")
			}
		} else {
			chars := e.rows[filerow].chars
			lineLen := min(max(len(chars)-e.colOffset, 0), e.screenCols)
			if lineLen > 0 {
				abuf.append(chars[e.colOffset : e.colOffset+lineLen])
			}
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

func (e *Editor) drawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT)

	filename := "[No Name]"
	if e.filename != "" {
		filename = runewidth.Truncate(e.filename, 20, "...")
	}
	dirtyFlag := ""
	if e.dirty {
		dirtyFlag = " (modified)"
	}
	status := runewidth.Truncate(filename+dirtyFlag, e.screenCols, "")
	rstatus := fmt.Sprintf("%d lines", len(e.rows))

	abuf.appendString(status)
	statusLen := runewidth.StringWidth(status)
	rstatusLen := runewidth.StringWidth(rstatus)

	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) drawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	if time.Since(e.statusMessageTime) < 5*time.Second {
		abuf.appendString(runewidth.Truncate(e.statusMessage, e.screenCols, ""))
	}
}

// RefreshScreen composes and writes one full frame: document window,
// status bar, message bar, then the terminal cursor at the on-screen
// cursor cell. An output error is fatal.
func (e *Editor) RefreshScreen() error {
	e.scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME)

	e.drawRows(&abuf)
	e.drawStatusBar(&abuf)
	e.drawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.cx-e.colOffset+1))
	abuf.appendString(CURSOR_SHOW)

	if _, err := e.term.Write(abuf.b); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
