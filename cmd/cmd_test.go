package cmd

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"actionmenu/cmd/cmd_test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunch(t *testing.T) {
	var started *exec.Cmd
	l := NewLauncher(cmd_test.MockCmdExec{
		StartFunc: func(c *exec.Cmd) error {
			started = c
			return nil
		},
	})
	var waited time.Duration
	l.after = func(d time.Duration) <-chan time.Time {
		waited = d
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}

	launched, err := l.Launch(context.Background(), "systemctl reboot", 100*time.Millisecond)
	require.NoError(t, err)

	require.NotNil(t, started)
	assert.Equal(t, []string{"sh", "-c", "systemctl reboot"}, started.Args)
	assert.NotNil(t, started.SysProcAttr, "runs detached")
	assert.Equal(t, 100*time.Millisecond, waited)
	assert.Len(t, launched.ID, 36)
	assert.Zero(t, launched.PID, "the mock starts no process")
}

func TestLaunchNoDelay(t *testing.T) {
	l := NewLauncher(cmd_test.MockCmdExec{})
	l.after = func(time.Duration) <-chan time.Time {
		t.Fatal("waited without a delay")
		return nil
	}

	_, err := l.Launch(context.Background(), "true", 0)
	assert.NoError(t, err)
}

func TestLaunchStartFailure(t *testing.T) {
	boom := errors.New("no such shell")
	l := NewLauncher(cmd_test.MockCmdExec{
		StartFunc: func(*exec.Cmd) error { return boom },
	})

	_, err := l.Launch(context.Background(), "true", 0)
	assert.ErrorIs(t, err, boom)
}

func TestLaunchCancelledDuringDelay(t *testing.T) {
	l := NewLauncher(cmd_test.MockCmdExec{
		StartFunc: func(*exec.Cmd) error {
			t.Fatal("started after cancellation")
			return nil
		},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Launch(ctx, "true", time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLaunchRealProcess(t *testing.T) {
	if _, err := exec.LookPath(Shell); err != nil {
		t.Skip("no sh available")
	}

	launched, err := NewLauncher(MakeExecutor()).Launch(context.Background(), "exit 0", time.Millisecond)
	require.NoError(t, err)
	assert.Positive(t, launched.PID)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "<nil>", ToString(nil))
	assert.Equal(t, "sh -c echo hi", ToString(exec.Command("sh", "-c", "echo hi")))
}

func TestRunForeground(t *testing.T) {
	var ran *exec.Cmd
	e := cmd_test.MockCmdExec{
		RunFunc: func(c *exec.Cmd) error {
			ran = c
			return nil
		},
	}

	require.NoError(t, RunForeground(e, "echo hi", nil, nil))
	assert.Equal(t, []string{"sh", "-c", "echo hi"}, ran.Args)
	assert.Nil(t, ran.SysProcAttr, "foreground commands stay attached")

	e.RunFunc = func(*exec.Cmd) error { return errors.New("exit status 1") }
	err := RunForeground(e, "false", nil, nil)
	assert.ErrorContains(t, err, "sh -c false: exit status 1")
}
