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
package types

// Editor modes
const (
	ModeEdit   = 0
	ModeSearch = 1
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventNone = 0
	EventKey  = 1
)

// The number of columns between tab stops.
const TabStop = 8

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Key int

// Keys recognized by the input decoder.
const (
	KeyUnsupported Key = iota
	KeyCtrlF
	KeyCtrlH
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlS
	KeyTab
	KeyEnter
	KeyEsc
	KeyBackspace2
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
)

// An Event describes one decoded keypress.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// Terminal is the I/O port to the controlling terminal. Read blocks until
// at least one byte is available and returns whatever arrived. Ports
// substituted for testing queue their bytes deterministically.
type Terminal interface {
	Read() ([]byte, error)
	Write(b []byte) error
	Size() (Size, error)
}

// File is the port to persistent storage. Load of a path that does not
// exist returns no lines and no error; Save overwrites the file wholesale.
type File interface {
	Load(path string) ([]string, error)
	Save(path string, lines []string) error
}

// DisplayEditor is the read-only view of editor state used for rendering.
type DisplayEditor interface {
	GetCursor() Point
	GetOffset() Size
	RenderCol() int
	RowCount() int
	RowLength(row int) int
	DisplayText(row int) string
	FileName() string
	Dirty() bool
}

type Editor interface {
	DisplayEditor

	SetCursor(cursor Point)
	SetOffset(offset Size)
	SetSize(size Size)
	Scroll()

	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()

	InsertChar(c rune)
	InsertNewline()
	BackspaceChar()
	DelChar()

	FindFrom(query string, from Point, backward bool) (Point, bool)

	ReadFile(path string) error
	WriteFile() error
}

type Commander interface {
	GetMode() int
	GetSearchText() string
	GetMessage() string
}
