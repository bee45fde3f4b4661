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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/timburks/gote/commander"
	"github.com/timburks/gote/editor"
	"github.com/timburks/gote/file"
	"github.com/timburks/gote/keyboard"
	"github.com/timburks/gote/screen"
	"github.com/timburks/gote/terminal"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: gote <filename>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(filename string) error {
	// The editor manages all text manipulation. A file that doesn't exist
	// yet starts as an empty buffer bound to its path.
	e := editor.NewEditor(file.NewStore())
	if err := e.ReadFile(filename); err != nil {
		return err
	}

	// These checks are the only fatal conditions: without a tty and its
	// size there is nothing to draw on.
	t, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	if _, err := t.Size(); err != nil {
		return err
	}

	// Log to a file; stdout belongs to the terminal UI from here on.
	if f, err := os.OpenFile(os.Getenv("HOME")+"/.gotelog",
		os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if err := t.Raw(); err != nil {
		return err
	}
	defer t.Restore()

	// Create a screen to manage display.
	s := screen.NewScreen(t)
	defer s.Close()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	// The decoder turns terminal bytes into key events.
	d := keyboard.NewDecoder(t)

	c.SetMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e, c); err != nil {
			return err
		}
		event, err := d.GetNextEvent()
		if err != nil {
			return err
		}
		if err := c.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}
