package editor

// prompt runs a modal input loop on the message bar. The format string
// receives the pending input, e.g. "Save as: %s". It returns the
// entered text on Enter; Escape, or Enter on empty input, cancels and
// returns "". A non-nil error is a fatal terminal failure.
func (e *Editor) prompt(format string) (string, error) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(format, string(buf))
		if err := e.RefreshScreen(); err != nil {
			return "", err
		}

		key, err := readKey(e.term)
		if err != nil {
			return "", err
		}

		switch key {
		case DELETE_KEY, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b':
			e.SetStatusMessage("")
			return "", nil

		case '\r':
			e.SetStatusMessage("")
			return string(buf), nil

		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}
	}
}
