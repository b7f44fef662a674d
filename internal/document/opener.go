package document

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener launches an external viewer for resolved document paths.
type Opener struct {
	command string
	logPath string
}

// NewOpener creates an opener using the given command. The command receives
// the document path as its sole argument. logPath, when non-empty, collects
// the viewer's stdout and stderr in a shared append-only log.
func NewOpener(command, logPath string) *Opener {
	return &Opener{command: command, logPath: logPath}
}

// Open launches the viewer and returns without waiting for it. Multiple
// rapid opens may run concurrently; their log lines interleave in no
// guaranteed order. The viewer's exit status is not interpreted.
func (o *Opener) Open(path string) error {
	if o.command == "" {
		return fmt.Errorf("opener command not configured")
	}

	cmd := exec.Command(o.command, path)
	cmd.Stdin = nil

	if o.logPath != "" {
		sink, err := os.OpenFile(o.logPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return fmt.Errorf("opening log sink: %w", err)
		}
		cmd.Stdout = sink
		cmd.Stderr = sink

		if err := cmd.Start(); err != nil {
			sink.Close()
			return fmt.Errorf("starting %s: %w", o.command, err)
		}
		// Close our handle once the viewer exits; the reaper goroutine
		// also keeps the process from lingering as a zombie.
		go func() {
			_ = cmd.Wait()
			sink.Close()
		}()
		return nil
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", o.command, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
