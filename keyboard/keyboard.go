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
package keyboard

import (
	"unicode/utf8"

	gote "github.com/timburks/gote/types"
)

// Control bytes the editor responds to.
const (
	ctrlF     = 6
	ctrlH     = 8
	tab       = 9
	lineFeed  = 10
	ctrlL     = 12
	enter     = 13
	ctrlQ     = 17
	ctrlS     = 19
	escape    = 27
	backspace = 127
)

// A Decoder turns the raw byte stream from a Terminal into key events.
// Reading from the terminal is the only point where the editor blocks;
// escape sequences are resolved from bytes that arrived in the same
// chunk, so an ESC that ends a chunk is a plain Escape key rather than
// the start of a sequence.
type Decoder struct {
	terminal gote.Terminal
	pending  []byte
}

func NewDecoder(terminal gote.Terminal) *Decoder {
	return &Decoder{terminal: terminal}
}

// GetNextEvent blocks until one keypress has been decoded. Unrecognized
// sequences come back as inert Escape events; they never fail the loop.
func (d *Decoder) GetNextEvent() (*gote.Event, error) {
	for len(d.pending) == 0 {
		chunk, err := d.terminal.Read()
		if err != nil {
			return nil, err
		}
		d.pending = append(d.pending, chunk...)
	}
	b := d.pending[0]
	d.pending = d.pending[1:]
	switch {
	case b == escape:
		return d.decodeEscape(), nil
	case b == enter || b == lineFeed:
		return keyEvent(gote.KeyEnter), nil
	case b == backspace:
		return keyEvent(gote.KeyBackspace2), nil
	case b == ctrlH:
		return keyEvent(gote.KeyCtrlH), nil
	case b == tab:
		return keyEvent(gote.KeyTab), nil
	case b == ctrlF:
		return keyEvent(gote.KeyCtrlF), nil
	case b == ctrlL:
		return keyEvent(gote.KeyCtrlL), nil
	case b == ctrlQ:
		return keyEvent(gote.KeyCtrlQ), nil
	case b == ctrlS:
		return keyEvent(gote.KeyCtrlS), nil
	case b < 32:
		return keyEvent(gote.KeyUnsupported), nil
	default:
		return d.decodeRune(b), nil
	}
}

func keyEvent(k gote.Key) *gote.Event {
	return &gote.Event{Type: gote.EventKey, Key: k}
}

// next pops a byte from the current chunk. It never reads the terminal:
// a sequence that ran out of bytes was not a sequence.
func (d *Decoder) next() (byte, bool) {
	if len(d.pending) == 0 {
		return 0, false
	}
	b := d.pending[0]
	d.pending = d.pending[1:]
	return b, true
}

func (d *Decoder) decodeEscape() *gote.Event {
	b, ok := d.next()
	if !ok {
		return keyEvent(gote.KeyEsc) // plain escape
	}
	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		// not a sequence we know; swallow the byte
		return keyEvent(gote.KeyEsc)
	}
}

// decodeCSI reads a control sequence: parameter bytes followed by a
// final byte in 0x40..0x7e.
func (d *Decoder) decodeCSI() *gote.Event {
	var seq []byte
	for {
		b, ok := d.next()
		if !ok {
			return keyEvent(gote.KeyEsc)
		}
		seq = append(seq, b)
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}
	switch string(seq) {
	case "A":
		return keyEvent(gote.KeyArrowUp)
	case "B":
		return keyEvent(gote.KeyArrowDown)
	case "C":
		return keyEvent(gote.KeyArrowRight)
	case "D":
		return keyEvent(gote.KeyArrowLeft)
	case "H", "1~", "7~":
		return keyEvent(gote.KeyHome)
	case "F", "4~", "8~":
		return keyEvent(gote.KeyEnd)
	case "3~":
		return keyEvent(gote.KeyDelete)
	case "5~":
		return keyEvent(gote.KeyPgup)
	case "6~":
		return keyEvent(gote.KeyPgdn)
	default:
		return keyEvent(gote.KeyEsc)
	}
}

func (d *Decoder) decodeSS3() *gote.Event {
	b, ok := d.next()
	if !ok {
		return keyEvent(gote.KeyEsc)
	}
	switch b {
	case 'A':
		return keyEvent(gote.KeyArrowUp)
	case 'B':
		return keyEvent(gote.KeyArrowDown)
	case 'C':
		return keyEvent(gote.KeyArrowRight)
	case 'D':
		return keyEvent(gote.KeyArrowLeft)
	case 'H':
		return keyEvent(gote.KeyHome)
	case 'F':
		return keyEvent(gote.KeyEnd)
	default:
		return keyEvent(gote.KeyEsc)
	}
}

// decodeRune assembles a printable character, multi-byte UTF-8 included,
// starting from the byte already popped.
func (d *Decoder) decodeRune(b byte) *gote.Event {
	if b < utf8.RuneSelf {
		return &gote.Event{Type: gote.EventKey, Ch: rune(b)}
	}
	buf := append([]byte{b}, d.pending...)
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		d.pending = nil
		return keyEvent(gote.KeyUnsupported)
	}
	d.pending = d.pending[size-1:]
	return &gote.Event{Type: gote.EventKey, Ch: r}
}
