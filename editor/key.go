package editor

import (
	"errors"

	"minano/terminal"
)

// Key aliase
const (
	BACKSPACE  = 127 // ASCII backspace
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f // 0x1f is 31 in decimal, which is the control character range
}

// readKey reads one logical key from the terminal, collapsing multi-byte
// escape sequences into single tokens. It blocks until a byte arrives;
// the short read timeout only serves to detect truncated sequences,
// which degrade to a bare escape.
func readKey(t terminal.Terminal) (int, error) {
	var c byte
	for {
		var err error
		c, err = t.ReadByte()
		if err == nil {
			break
		}
		if !errors.Is(err, terminal.ErrReadTimeout) {
			return 0, err
		}
	}

	if c != '\x1b' {
		return int(c), nil
	}

	// A sequence is in progress: the continuation bytes must already be
	// buffered, so a timeout here means the user pressed plain ESC.
	seq0, err := t.ReadByte()
	if err != nil {
		return escOrFatal(err)
	}
	seq1, err := t.ReadByte()
	if err != nil {
		return escOrFatal(err)
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, err := t.ReadByte()
			if err != nil {
				return escOrFatal(err)
			}
			if seq2 == '~' {
				switch seq1 {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq1 {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq1 {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return '\x1b', nil // Unknown escape sequence, return escape
}

// escOrFatal turns a truncated sequence into a bare escape; real read
// errors propagate and are fatal to the caller.
func escOrFatal(err error) (int, error) {
	if errors.Is(err, terminal.ErrReadTimeout) {
		return '\x1b', nil
	}
	return 0, err
}
