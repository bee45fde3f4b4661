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

// A Buffer represents a file being edited.
type Buffer struct {
	rows     []*Row
	fileName string
	dirty    bool
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) Dirty() bool {
	return b.dirty
}

func (b *Buffer) SetDirty(dirty bool) {
	b.dirty = dirty
}

// LoadLines replaces the buffer contents, one row per line. An empty
// file still gets one empty row so the cursor always has a valid row.
func (b *Buffer) LoadLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	b.dirty = false
}

// Lines returns the raw text of every row, in order.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, len(b.rows))
	for _, row := range b.rows {
		lines = append(lines, row.Text())
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRow(i int) *Row {
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// InsertRow makes room at the given index and places a new row there.
func (b *Buffer) InsertRow(at int, row *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	b.dirty = true
}

func (b *Buffer) DeleteRow(at int) {
	if at < len(b.rows) {
		b.rows = append(b.rows[0:at], b.rows[at+1:]...)
		b.dirty = true
	}
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
		b.dirty = true
	}
}

// DeleteCharacter removes the character at the given position and
// returns it.
func (b *Buffer) DeleteCharacter(row, col int) rune {
	if row >= len(b.rows) {
		return 0
	}
	c := b.rows[row].DeleteChar(col)
	b.dirty = true
	return c
}

// JoinRow appends the row below the given index onto it and removes
// the lower row.
func (b *Buffer) JoinRow(at int) {
	if at+1 < len(b.rows) {
		b.rows[at].Join(b.rows[at+1])
		b.rows = append(b.rows[0:at+1], b.rows[at+2:]...)
		b.dirty = true
	}
}
