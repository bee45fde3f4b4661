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
	"strings"
	"testing"

	"github.com/timburks/gote/commander"
	"github.com/timburks/gote/editor"
	gote "github.com/timburks/gote/types"
)

// frameTerminal is a Terminal port that captures written frames.
type frameTerminal struct {
	size   gote.Size
	frames []string
}

func (f *frameTerminal) Read() ([]byte, error) {
	return nil, nil
}

func (f *frameTerminal) Write(b []byte) error {
	f.frames = append(f.frames, string(b))
	return nil
}

func (f *frameTerminal) Size() (gote.Size, error) {
	return f.size, nil
}

// memoryFile is an in-memory File port.
type memoryFile struct {
	lines []string
}

func (f *memoryFile) Load(path string) ([]string, error) {
	return f.lines, nil
}

func (f *memoryFile) Save(path string, lines []string) error {
	return nil
}

func render(t *testing.T, lines []string, size gote.Size) (string, *editor.Editor) {
	t.Helper()
	e := editor.NewEditor(&memoryFile{lines: lines})
	if err := e.ReadFile("test.txt"); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	terminal := &frameTerminal{size: size}
	s := NewScreen(terminal)
	c := commander.NewCommander(e)
	if err := s.Render(e, c); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	if len(terminal.frames) != 1 {
		t.Fatalf("wrote %d frames, want 1", len(terminal.frames))
	}
	return terminal.frames[0], e
}

func TestRenderFrame(t *testing.T) {
	frame, _ := render(t, []string{"hello", "world"}, gote.Size{Rows: 6, Cols: 20})

	if !strings.HasPrefix(frame, "\x1b[?25l\x1b[H") {
		t.Error("frame does not start by hiding the cursor and homing")
	}
	if !strings.Contains(frame, "hello\x1b[K\r\n") {
		t.Error("frame is missing the first row")
	}
	if !strings.Contains(frame, "world\x1b[K\r\n") {
		t.Error("frame is missing the second row")
	}
	// rows past the end of the buffer are drawn as ~
	if !strings.Contains(frame, "~\x1b[K\r\n") {
		t.Error("frame is missing the ~ filler rows")
	}
	if !strings.Contains(frame, "test.txt") {
		t.Error("status bar is missing the file name")
	}
	if !strings.Contains(frame, " 1/2 ") {
		t.Error("status bar is missing the cursor position")
	}
	// cursor placed at the top left, then shown
	if !strings.HasSuffix(frame, "\x1b[1;1H\x1b[?25h") {
		t.Errorf("frame ends with %q", frame[len(frame)-12:])
	}
}

func TestRenderDirtyIndicator(t *testing.T) {
	e := editor.NewEditor(&memoryFile{lines: []string{"hello"}})
	if err := e.ReadFile("test.txt"); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	terminal := &frameTerminal{size: gote.Size{Rows: 6, Cols: 30}}
	s := NewScreen(terminal)
	c := commander.NewCommander(e)

	s.Render(e, c)
	if strings.Contains(terminal.frames[0], "(modified)") {
		t.Error("clean buffer shows the modified marker")
	}
	e.InsertChar('!')
	s.Render(e, c)
	if !strings.Contains(terminal.frames[1], "(modified)") {
		t.Error("dirty buffer does not show the modified marker")
	}
}

func TestRenderScrollsToCursor(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	e := editor.NewEditor(&memoryFile{lines: lines})
	if err := e.ReadFile("test.txt"); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	terminal := &frameTerminal{size: gote.Size{Rows: 5, Cols: 10}}
	s := NewScreen(terminal)
	c := commander.NewCommander(e)

	e.SetCursor(gote.Point{Row: 9, Col: 0})
	s.Render(e, c)
	frame := terminal.frames[0]
	if !strings.Contains(frame, "9\x1b[K") {
		t.Error("frame does not show the cursor's row")
	}
	if strings.Contains(frame, "0\x1b[K") {
		t.Error("frame still shows the top of the buffer")
	}
	// text area is 3 rows; the cursor lands on the last one
	if !strings.HasSuffix(frame, "\x1b[3;1H\x1b[?25h") {
		t.Error("cursor was not placed on the last text row")
	}
}

func TestRenderColumnOffset(t *testing.T) {
	long := strings.Repeat("x", 30) + "END"
	e := editor.NewEditor(&memoryFile{lines: []string{long}})
	if err := e.ReadFile("test.txt"); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	terminal := &frameTerminal{size: gote.Size{Rows: 5, Cols: 10}}
	s := NewScreen(terminal)
	c := commander.NewCommander(e)

	e.SetCursor(gote.Point{Row: 0, Col: 33})
	s.Render(e, c)
	if !strings.Contains(terminal.frames[0], "END\x1b[K") {
		t.Error("frame does not show the end of the scrolled row")
	}
}

func TestRenderSearchPrompt(t *testing.T) {
	e := editor.NewEditor(&memoryFile{lines: []string{"foobar"}})
	if err := e.ReadFile("test.txt"); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	terminal := &frameTerminal{size: gote.Size{Rows: 6, Cols: 40}}
	s := NewScreen(terminal)
	c := commander.NewCommander(e)

	c.ProcessEvent(&gote.Event{Type: gote.EventKey, Key: gote.KeyCtrlF})
	c.ProcessEvent(&gote.Event{Type: gote.EventKey, Ch: 'f'})
	s.Render(e, c)
	if !strings.Contains(terminal.frames[0], "Search: f (ESC/Arrows/Enter)") {
		t.Error("message bar is missing the search prompt")
	}
}

func TestRenderMessageBar(t *testing.T) {
	e := editor.NewEditor(&memoryFile{lines: []string{"x"}})
	if err := e.ReadFile("test.txt"); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	terminal := &frameTerminal{size: gote.Size{Rows: 6, Cols: 40}}
	s := NewScreen(terminal)
	c := commander.NewCommander(e)

	c.SetMessage("hello there")
	s.Render(e, c)
	if !strings.Contains(terminal.frames[0], "hello there") {
		t.Error("message bar is missing the status message")
	}
}

func TestRenderTabExpansion(t *testing.T) {
	frame, e := render(t, []string{"\tx"}, gote.Size{Rows: 5, Cols: 20})
	if !strings.Contains(frame, "        x\x1b[K") {
		t.Error("frame does not expand the tab")
	}
	if e.GetCursor() != (gote.Point{Row: 0, Col: 0}) {
		t.Errorf("render moved the cursor to %+v", e.GetCursor())
	}
}
