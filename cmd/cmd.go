// Package cmd runs external processes behind an interface so callers can be tested without
// spawning anything.
package cmd

import (
	"actionmenu/log"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Executor runs prepared commands.
type Executor interface {
	// Run runs cmd to completion.
	Run(cmd *exec.Cmd) error
	// Start starts cmd without waiting for it to finish.
	Start(cmd *exec.Cmd) error
}

type osExecutor struct{}

func (osExecutor) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (osExecutor) Start(cmd *exec.Cmd) error {
	return cmd.Start()
}

// MakeExecutor returns the Executor backed by os/exec.
func MakeExecutor() Executor {
	return osExecutor{}
}

// ToString renders a command line for logs.
func ToString(cmd *exec.Cmd) string {
	if cmd == nil {
		return "<nil>"
	}
	return strings.Join(cmd.Args, " ")
}

// Shell is the interpreter actions are run with.
const Shell = "sh"

// Launcher starts menu actions as detached shell commands.
type Launcher struct {
	exec Executor
	// after is time.After, replaceable in tests.
	after func(time.Duration) <-chan time.Time
}

// NewLauncher returns a launcher running commands through e.
func NewLauncher(e Executor) *Launcher {
	return &Launcher{exec: e, after: time.After}
}

// Launched describes a started action.
type Launched struct {
	ID  string
	PID int
}

// Launch waits delay, then runs action with `sh -c` in its own session so it outlives the menu.
// It returns once the process has started.
func (l *Launcher) Launch(ctx context.Context, action string, delay time.Duration) (Launched, error) {
	launched := Launched{ID: uuid.NewString()}

	if delay > 0 {
		select {
		case <-l.after(delay):
		case <-ctx.Done():
			return launched, ctx.Err()
		}
	}

	c := exec.Command(Shell, "-c", action)
	detach(c)
	if err := l.exec.Start(c); err != nil {
		log.ErrorLog.Printf("Execution error: %v", err)
		return launched, fmt.Errorf("failed to start %q: %w", action, err)
	}

	if c.Process != nil {
		launched.PID = c.Process.Pid
		_ = c.Process.Release()
	}
	log.InfoLog.Printf("launched %s [%s] pid=%d", ToString(c), launched.ID, launched.PID)
	return launched, nil
}

// RunForeground runs action with `sh -c` attached to the given terminal streams and waits for it.
func RunForeground(e Executor, action string, stdout, stderr io.Writer) error {
	c := exec.Command(Shell, "-c", action)
	c.Stdout = stdout
	c.Stderr = stderr
	if err := e.Run(c); err != nil {
		return fmt.Errorf("%s: %w", ToString(c), err)
	}
	return nil
}
