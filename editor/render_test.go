package editor

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func renderFrame(t *testing.T, e *Editor, term *mockTerminal) string {
	t.Helper()
	term.output.Reset()
	if err := e.RefreshScreen(); err != nil {
		t.Fatalf("RefreshScreen() error = %v", err)
	}
	return term.output.String()
}

func TestFrameStructure(t *testing.T) {
	e, term := newTestEditor(t, "hello")
	frame := renderFrame(t, e, term)

	if !strings.HasPrefix(frame, CURSOR_HIDE+CURSOR_HOME) {
		t.Error("frame does not start with cursor hide + home")
	}
	if !strings.HasSuffix(frame, CURSOR_SHOW) {
		t.Error("frame does not end with cursor show")
	}
	if !strings.Contains(frame, "hello") {
		t.Error("frame missing document content")
	}
	if !strings.Contains(frame, COLORS_INVERT) || !strings.Contains(frame, COLORS_RESET) {
		t.Error("frame missing inverted status bar")
	}
}

func TestWelcomeOnlyOnEmptyUnnamedBuffer(t *testing.T) {
	e, term := newTestEditor(t)
	frame := renderFrame(t, e, term)
	if !strings.Contains(frame, "minano editor") {
		t.Error("empty unnamed buffer does not show the welcome line")
	}

	e.filename = "named.txt"
	frame = renderFrame(t, e, term)
	if strings.Contains(frame, "minano editor") {
		t.Error("named buffer still shows the welcome line")
	}

	e.filename = ""
	e.appendLine([]byte("x"))
	frame = renderFrame(t, e, term)
	if strings.Contains(frame, "minano editor") {
		t.Error("non-empty buffer still shows the welcome line")
	}
}

func TestPlaceholderRowsPastEndOfDocument(t *testing.T) {
	e, term := newTestEditor(t, "only line")
	frame := renderFrame(t, e, term)

	// One content row, the rest placeholders.
	if got := strings.Count(frame, "~"+CLEAR_LINE); got != e.screenRows-1 {
		t.Errorf("placeholder rows = %d, want %d", got, e.screenRows-1)
	}
}

func TestStatusBarContents(t *testing.T) {
	e, term := newTestEditor(t, "a", "b", "c")
	frame := renderFrame(t, e, term)

	if !strings.Contains(frame, "[No Name]") {
		t.Error("status bar missing [No Name] for unnamed buffer")
	}
	if !strings.Contains(frame, "3 lines") {
		t.Error("status bar missing line count")
	}
	if strings.Contains(frame, "(modified)") {
		t.Error("clean buffer marked modified")
	}

	e.filename = "file.txt"
	e.dirty = true
	frame = renderFrame(t, e, term)
	if !strings.Contains(frame, "file.txt (modified)") {
		t.Error("status bar missing filename and modified marker")
	}
}

func TestMessageBarExpires(t *testing.T) {
	e, term := newTestEditor(t)
	e.SetStatusMessage("hello there")

	frame := renderFrame(t, e, term)
	if !strings.Contains(frame, "hello there") {
		t.Error("fresh status message not rendered")
	}

	e.statusMessageTime = time.Now().Add(-6 * time.Second)
	frame = renderFrame(t, e, term)
	if strings.Contains(frame, "hello there") {
		t.Error("expired status message still rendered")
	}
}

func TestCursorRepositionedInsideViewport(t *testing.T) {
	e, term := newTestEditor(t)
	for i := 0; i < 40; i++ {
		e.appendLine([]byte("line"))
	}
	e.screenRows = 10
	e.cy, e.cx = 15, 2

	frame := renderFrame(t, e, term)

	// rowOffset becomes 6, so the cursor lands on screen row 10, col 3.
	want := fmt.Sprintf(CURSOR_POSITION_FORMAT, 10, 3)
	if !strings.Contains(frame, want) {
		t.Errorf("frame missing cursor reposition %q", want)
	}
	if e.rowOffset != 6 {
		t.Errorf("rowOffset = %d, want 6", e.rowOffset)
	}
}

func TestLongLinesClippedToViewport(t *testing.T) {
	e, term := newTestEditor(t, strings.Repeat("abcdefghij", 20))
	e.screenCols = 10
	e.colOffset = 0

	frame := renderFrame(t, e, term)
	if !strings.Contains(frame, "abcdefghij"+CLEAR_LINE) {
		t.Error("line not clipped to the viewport width")
	}

	e.cx = 15
	frame = renderFrame(t, e, term)
	if e.colOffset != 6 {
		t.Errorf("colOffset = %d, want 6", e.colOffset)
	}
	if !strings.Contains(frame, "ghijabcdef"+CLEAR_LINE) {
		t.Error("clipped line does not honor the column offset")
	}
}
