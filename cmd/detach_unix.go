//go:build !windows

package cmd

import (
	"os/exec"
	"syscall"
)

// detach starts c in a new session, away from the menu's controlling terminal.
func detach(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
