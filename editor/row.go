package editor

import "slices"

// row is a single document line without its terminator. The chars slice
// is owned exclusively by the editor at the row's index: insertRow
// clones incoming bytes, so no two rows ever share backing storage.
type row struct {
	chars []byte
}

func (r *row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = slices.Insert(r.chars, at, c)
}

func (r *row) deleteChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = slices.Delete(r.chars, at, at+1)
}

func (r *row) appendBytes(s []byte) {
	r.chars = append(r.chars, s...)
}

/*** document operations ***/

func (e *Editor) insertRow(at int, s []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	e.rows = slices.Insert(e.rows, at, row{chars: slices.Clone(s)})
	e.dirty = true
}

func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = slices.Delete(e.rows, at, at+1)
	e.dirty = true
}

// appendLine adds an owned copy of s as the last document line.
func (e *Editor) appendLine(s []byte) {
	e.insertRow(len(e.rows), s)
}
