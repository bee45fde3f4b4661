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

	gote "github.com/timburks/gote/types"
)

// A row of text in the editor. The raw text is what the file contains;
// the render string is the raw text with tabs expanded and is recomputed
// by every mutation.
type Row struct {
	text   []rune
	render string
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.text = text
	var rendered strings.Builder
	col := 0
	for _, c := range text {
		if c == '\t' {
			rendered.WriteRune(' ')
			col++
			for col%gote.TabStop != 0 {
				rendered.WriteRune(' ')
				col++
			}
		} else {
			rendered.WriteRune(c)
			col++
		}
	}
	r.render = rendered.String()
}

func (r *Row) Text() string {
	return string(r.text)
}

// DisplayText returns the tab-expanded form of the row.
func (r *Row) DisplayText() string {
	return r.render
}

func (r *Row) Length() int {
	return len(r.text)
}

// CxToRx converts an index into the raw text to the corresponding
// column of the rendered text.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for i, c := range r.text {
		if i >= cx {
			break
		}
		if c == '\t' {
			rx += gote.TabStop - (rx % gote.TabStop)
		} else {
			rx++
		}
	}
	return rx
}

func (r *Row) InsertChar(col int, c rune) {
	line := make([]rune, 0, len(r.text)+1)
	if col > len(r.text) {
		col = len(r.text)
	}
	line = append(line, r.text[0:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if len(r.text) == 0 {
		return 0
	}
	if col > len(r.text)-1 {
		col = len(r.text) - 1
	}
	c := r.text[col]
	r.setText(append(r.text[0:col], r.text[col+1:]...))
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < len(r.text) {
		after := string(r.text[col:])
		r.setText(r.text[0:col])
		return NewRow(after)
	}
	return NewRow("")
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.setText(append(r.text, other.text...))
}

func (r *Row) AppendString(s string) {
	r.setText(append(r.text, []rune(s)...))
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.text) {
		return string(r.text[col:])
	}
	return ""
}
