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
package commander

import (
	"fmt"
	"time"

	gote "github.com/timburks/gote/types"
)

// One extra Ctrl-Q press is required to quit with unsaved changes.
const quitConfirmations = 1

// Status messages disappear after this long.
const messageTimeout = 5 * time.Second

// The Commander converts user inputs into commands for the Editor.
type Commander struct {
	editor      gote.Editor
	mode        int       // editor mode
	searchText  string    // search query as it is being typed
	message     string    // status message
	messageTime time.Time // when the status message was set
	quitCount   int       // Ctrl-Q presses seen with a dirty buffer

	// search state, live while mode is ModeSearch
	savedCursor gote.Point // cursor to restore on cancel
	savedOffset gote.Size  // offset to restore on cancel
	lastMatch   gote.Point // most recent match
	haveMatch   bool
	backward    bool
}

func NewCommander(e gote.Editor) *Commander {
	return &Commander{editor: e, mode: gote.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gote.ModeQuit
}

func (c *Commander) GetSearchText() string {
	return c.searchText
}

func (c *Commander) SetMessage(msg string) {
	c.message = msg
	c.messageTime = time.Now()
}

func (c *Commander) GetMessage() string {
	if time.Since(c.messageTime) > messageTimeout {
		return ""
	}
	return c.message
}

func (c *Commander) ProcessEvent(event *gote.Event) error {
	if event.Type != gote.EventKey {
		return nil
	}
	switch c.mode {
	case gote.ModeSearch:
		return c.ProcessKeySearchMode(event)
	default:
		return c.ProcessKeyEditMode(event)
	}
}

func (c *Commander) ProcessKeyEditMode(event *gote.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	if key == gote.KeyCtrlQ {
		if e.Dirty() && c.quitCount < quitConfirmations {
			c.quitCount++
			c.SetMessage("warning: file has unsaved changes; press Ctrl-Q again to quit")
			return nil
		}
		c.mode = gote.ModeQuit
		return nil
	}
	// any other key restarts the quit confirmation
	c.quitCount = 0

	if key != 0 {
		switch key {
		case gote.KeyCtrlS:
			if err := e.WriteFile(); err != nil {
				c.SetMessage(fmt.Sprintf("can't save: %s", err))
			} else {
				c.SetMessage("file written")
			}
		case gote.KeyCtrlF:
			c.mode = gote.ModeSearch
			c.searchText = ""
			c.savedCursor = e.GetCursor()
			c.savedOffset = e.GetOffset()
			c.haveMatch = false
			c.backward = false
		case gote.KeyCtrlL, gote.KeyEsc:
			// the screen is fully redrawn after every event
		case gote.KeyEnter:
			e.InsertNewline()
		case gote.KeyBackspace2, gote.KeyCtrlH:
			e.BackspaceChar()
		case gote.KeyDelete:
			e.DelChar()
		case gote.KeyTab:
			e.InsertChar('\t')
		case gote.KeyHome:
			e.MoveToBeginningOfLine()
		case gote.KeyEnd:
			e.MoveToEndOfLine()
		case gote.KeyPgup:
			e.PageUp()
		case gote.KeyPgdn:
			e.PageDown()
		case gote.KeyArrowUp:
			e.MoveCursor(gote.MoveUp)
		case gote.KeyArrowDown:
			e.MoveCursor(gote.MoveDown)
		case gote.KeyArrowLeft:
			e.MoveCursor(gote.MoveLeft)
		case gote.KeyArrowRight:
			e.MoveCursor(gote.MoveRight)
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *gote.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	edited := false
	stepped := false

	if key != 0 {
		switch key {
		case gote.KeyEsc:
			// cancel: put the cursor and viewport back exactly
			e.SetCursor(c.savedCursor)
			e.SetOffset(c.savedOffset)
			c.mode = gote.ModeEdit
			c.SetMessage("")
			return nil
		case gote.KeyEnter:
			// confirm: stay wherever the search left us
			c.mode = gote.ModeEdit
			c.SetMessage("")
			return nil
		case gote.KeyBackspace2, gote.KeyCtrlH:
			if text := []rune(c.searchText); len(text) > 0 {
				c.searchText = string(text[0 : len(text)-1])
			}
			edited = true
		case gote.KeyArrowDown, gote.KeyArrowRight:
			c.backward = false
			stepped = true
		case gote.KeyArrowUp, gote.KeyArrowLeft:
			c.backward = true
			stepped = true
		default:
			return nil
		}
	}
	if ch != 0 {
		c.searchText += string(ch)
		edited = true
	}

	if edited || stepped {
		c.runSearch(edited)
	}
	return nil
}

// runSearch performs one incremental search step. After a query edit the
// scan restarts from the position saved when the search began; otherwise
// it continues from the row adjacent to the last match.
func (c *Commander) runSearch(edited bool) {
	e := c.editor

	if edited {
		c.haveMatch = false
		c.backward = false
	}

	from := c.savedCursor
	if c.haveMatch {
		count := e.RowCount()
		if c.backward {
			row := (c.lastMatch.Row - 1 + count) % count
			from = gote.Point{Row: row, Col: e.RowLength(row)}
		} else {
			from = gote.Point{Row: (c.lastMatch.Row + 1) % count, Col: 0}
		}
	}

	match, found := e.FindFrom(c.searchText, from, c.backward)
	if found {
		c.lastMatch = match
		c.haveMatch = true
		e.SetCursor(match)
	}
	// on a miss the cursor stays where it is
}
