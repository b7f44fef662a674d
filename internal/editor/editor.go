// Package editor opens files in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Editor launches an interactive editor attached to the terminal.
type Editor struct {
	command string
}

// New creates an editor using the given command, falling back to $EDITOR
// and then vi.
func New(command string) *Editor {
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if command == "" {
		command = "vi"
	}
	return &Editor{command: command}
}

// Edit opens the file and blocks until the editor exits.
func (e *Editor) Edit(path string) error {
	cmd := exec.Command(e.command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", e.command, err)
	}
	return nil
}
