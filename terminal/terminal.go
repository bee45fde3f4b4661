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
package terminal

import (
	"errors"
	"os"

	"golang.org/x/term"

	gote "github.com/timburks/gote/types"
)

// Terminal is the I/O port to the controlling tty.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewTerminal opens the port on stdin/stdout. It fails if stdin is not a
// tty; the editor cannot run without one.
func NewTerminal() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal")
	}
	return &Terminal{in: os.Stdin, out: os.Stdout}, nil
}

// Raw puts the terminal into raw mode, saving the previous state so
// Restore can put it back.
func (t *Terminal) Raw() error {
	if t.oldState != nil {
		return nil // already raw
	}
	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.oldState = oldState
	return nil
}

// Restore returns the terminal to the state it was in before Raw. It is
// safe to call on every exit path, raw or not.
func (t *Terminal) Restore() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// Read blocks until input is available and returns the bytes that
// arrived. An escape sequence typically arrives as one chunk.
func (t *Terminal) Read() ([]byte, error) {
	buf := make([]byte, 64)
	n, err := t.in.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (t *Terminal) Write(b []byte) error {
	_, err := t.out.Write(b)
	return err
}

func (t *Terminal) Size() (gote.Size, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return gote.Size{}, err
	}
	return gote.Size{Rows: rows, Cols: cols}, nil
}
