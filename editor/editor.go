//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"
	"unicode/utf8"

	gote "github.com/timburks/gote/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor gote.Point // cursor position
	Offset gote.Size  // display offset
	Buffer *Buffer    // buffer being edited
	size   gote.Size  // size of editing area
	file   gote.File  // storage port
}

func NewEditor(file gote.File) *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.file = file
	return e
}

func (e *Editor) ReadFile(path string) error {
	lines, err := e.file.Load(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadLines(lines)
	e.Buffer.SetFileName(path)
	return nil
}

// WriteFile saves the buffer through the storage port. The dirty flag is
// cleared only after the port reports success.
func (e *Editor) WriteFile() error {
	err := e.file.Save(e.Buffer.GetFileName(), e.Buffer.Lines())
	if err != nil {
		return err
	}
	e.Buffer.SetDirty(false)
	return nil
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gote.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			// moving left at the start of a line wraps to the end of the line above
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case gote.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	case gote.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case gote.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	e.KeepCursorInRow()
}

// KeepCursorInRow clamps the cursor to the buffer. A column equal to the
// row length is valid; it is the append position.
func (e *Editor) KeepCursorInRow() {
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(gote.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	e.KeepCursorInRow()
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(gote.MoveDown)
	}
}

// RenderCol is the cursor column in the rendered (tab-expanded) text.
func (e *Editor) RenderCol() int {
	return e.Buffer.GetRow(e.Cursor.Row).CxToRx(e.Cursor.Col)
}

// Scroll moves the display offset so the cursor is inside the window.
func (e *Editor) Scroll() {
	rx := e.RenderCol()
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if rx < e.Offset.Cols {
		e.Offset.Cols = rx
	}
	if rx-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = rx - e.size.Cols + 1
	}
}

func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the current row at the cursor and moves the cursor
// to the start of the new row.
func (e *Editor) InsertNewline() {
	newRow := e.Buffer.GetRow(e.Cursor.Row).Split(e.Cursor.Col)
	e.Buffer.InsertRow(e.Cursor.Row+1, newRow)
	e.Cursor.Row++
	e.Cursor.Col = 0
}

func (e *Editor) BackspaceChar() {
	if e.Cursor.Col > 0 {
		e.Buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col-1)
		e.Cursor.Col--
	} else if e.Cursor.Row > 0 {
		// join the current row onto the end of the row above
		col := e.Buffer.GetRowLength(e.Cursor.Row - 1)
		e.Buffer.JoinRow(e.Cursor.Row - 1)
		e.Cursor.Row--
		e.Cursor.Col = col
	}
	// backspace at the top of the buffer is a no-op
}

// DelChar deletes the character under the cursor; at the end of a line it
// joins the next row onto this one. The cursor does not move.
func (e *Editor) DelChar() {
	if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col)
	} else if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
		e.Buffer.JoinRow(e.Cursor.Row)
	}
}

// FindFrom scans the buffer for the first row containing query, starting
// at the given position and wrapping around. Moving forward, the starting
// row is only examined at or after the starting column; moving backward,
// only before it. The scan revisits the starting row once at the end so
// a full wrap covers every occurrence. The cursor is not moved.
func (e *Editor) FindFrom(query string, from gote.Point, backward bool) (gote.Point, bool) {
	if query == "" {
		return from, false
	}
	count := e.Buffer.GetRowCount()
	row := from.Row
	col := from.Col
	for n := 0; n <= count; n++ {
		text := e.Buffer.GetRow(row).Text()
		var i int
		if backward {
			i = lastIndexBefore(text, query, col)
		} else {
			i = indexFrom(text, query, col)
		}
		if i >= 0 {
			return gote.Point{Row: row, Col: i}, true
		}
		if backward {
			row = (row - 1 + count) % count
			col = e.Buffer.GetRowLength(row)
		} else {
			row = (row + 1) % count
			col = 0
		}
	}
	return from, false
}

// indexFrom returns the rune index of the first occurrence of query in s
// at or after rune index from, or -1.
func indexFrom(s, query string, from int) int {
	runes := []rune(s)
	if from > len(runes) {
		return -1
	}
	rest := string(runes[from:])
	i := strings.Index(rest, query)
	if i < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(rest[:i])
}

// lastIndexBefore returns the rune index of the last occurrence of query
// ending within the first before runes of s, or -1.
func lastIndexBefore(s, query string, before int) int {
	runes := []rune(s)
	if before > len(runes) {
		before = len(runes)
	}
	prefix := string(runes[:before])
	i := strings.LastIndex(prefix, query)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(prefix[:i])
}

// display and state accessors

func (e *Editor) GetCursor() gote.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor gote.Point) {
	e.Cursor = cursor
}

func (e *Editor) GetOffset() gote.Size {
	return e.Offset
}

func (e *Editor) SetOffset(offset gote.Size) {
	e.Offset = offset
}

func (e *Editor) SetSize(s gote.Size) {
	e.size = s
}

func (e *Editor) RowCount() int {
	return e.Buffer.GetRowCount()
}

func (e *Editor) RowLength(row int) int {
	return e.Buffer.GetRowLength(row)
}

func (e *Editor) DisplayText(row int) string {
	return e.Buffer.GetRow(row).DisplayText()
}

func (e *Editor) FileName() string {
	return e.Buffer.GetFileName()
}

func (e *Editor) Dirty() bool {
	return e.Buffer.Dirty()
}
