package cmd_test

import "os/exec"

// MockCmdExec is an Executor whose behavior is supplied by the test. Nil funcs succeed.
type MockCmdExec struct {
	RunFunc   func(cmd *exec.Cmd) error
	StartFunc func(cmd *exec.Cmd) error
}

func (e MockCmdExec) Run(cmd *exec.Cmd) error {
	if e.RunFunc == nil {
		return nil
	}
	return e.RunFunc(cmd)
}

func (e MockCmdExec) Start(cmd *exec.Cmd) error {
	if e.StartFunc == nil {
		return nil
	}
	return e.StartFunc(cmd)
}
