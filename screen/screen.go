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
package screen

import (
	"bytes"
	"fmt"

	gote "github.com/timburks/gote/types"
)

// The Screen draws the state of an Editor. Every frame redraws the whole
// visible region; frames are only emitted once per input event.
type Screen struct {
	terminal gote.Terminal
	size     gote.Size // screen size
}

func NewScreen(terminal gote.Terminal) *Screen {
	return &Screen{terminal: terminal}
}

// Close wipes the screen so the shell gets a clean terminal back.
func (s *Screen) Close() {
	s.terminal.Write([]byte("\x1b[2J\x1b[H"))
}

// Render emits one frame. The editor is given the text area and asked to
// scroll the cursor into view; after that, drawing only reads.
func (s *Screen) Render(e gote.Editor, c gote.Commander) error {
	if size, err := s.terminal.Size(); err == nil {
		s.size = size
	}

	editSize := s.size
	editSize.Rows -= 2 // status and message bars
	e.SetSize(editSize)
	e.Scroll()

	var frame bytes.Buffer
	frame.WriteString("\x1b[?25l") // hide cursor
	frame.WriteString("\x1b[H")    // go home
	s.drawRows(&frame, e, editSize)
	s.drawStatusBar(&frame, e)
	s.drawMessageBar(&frame, c)

	// place the terminal cursor at the editor cursor
	cursor := e.GetCursor()
	offset := e.GetOffset()
	fmt.Fprintf(&frame, "\x1b[%d;%dH",
		cursor.Row-offset.Rows+1,
		e.RenderCol()-offset.Cols+1)
	frame.WriteString("\x1b[?25h") // show cursor

	return s.terminal.Write(frame.Bytes())
}

func (s *Screen) drawRows(frame *bytes.Buffer, e gote.DisplayEditor, editSize gote.Size) {
	offset := e.GetOffset()
	for y := 0; y < editSize.Rows; y++ {
		row := y + offset.Rows
		if row >= e.RowCount() {
			frame.WriteString("~")
		} else {
			line := []rune(e.DisplayText(row))
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
			} else {
				line = nil
			}
			if len(line) > editSize.Cols {
				line = line[0:editSize.Cols]
			}
			frame.WriteString(string(line))
		}
		frame.WriteString("\x1b[K") // erase to end of line
		frame.WriteString("\r\n")
	}
}

func (s *Screen) drawStatusBar(frame *bytes.Buffer, e gote.DisplayEditor) {
	frame.WriteString("\x1b[7m") // inverse video
	name := e.FileName()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.Dirty() {
		modified = "(modified)"
	}
	status := fmt.Sprintf(" %.20s %s", name, modified)
	position := fmt.Sprintf(" %d/%d ", e.GetCursor().Row+1, e.RowCount())
	if len(status) > s.size.Cols {
		status = status[0:s.size.Cols]
	}
	frame.WriteString(status)
	for n := len(status); n < s.size.Cols; n++ {
		if s.size.Cols-n == len(position) {
			frame.WriteString(position)
			break
		}
		frame.WriteString(" ")
	}
	frame.WriteString("\x1b[m") // reset attributes
	frame.WriteString("\r\n")
}

func (s *Screen) drawMessageBar(frame *bytes.Buffer, c gote.Commander) {
	frame.WriteString("\x1b[K")
	var line string
	switch c.GetMode() {
	case gote.ModeSearch:
		line = fmt.Sprintf("Search: %s (ESC/Arrows/Enter)", c.GetSearchText())
	default:
		line = c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	frame.WriteString(line)
}
