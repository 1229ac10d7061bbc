package system

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, cmd string, args ...string) (stdout, stderr string, err error)
}

type NoopRunner struct{}

func (NoopRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	return "", "", nil
}

// ShellRunner executes commands resolved through PATH.
// It returns stdout, stderr, and an error if the command exits non-zero.
type ShellRunner struct {
	Logger logger
}

func (r ShellRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	var outBuf, errBuf bytes.Buffer
	c.Stdout = &outBuf
	c.Stderr = &errBuf
	if r.Logger != nil {
		r.Logger.Infof("exec", "%s %v", cmd, args)
	}
	err := c.Run()
	if err != nil {
		// Include exit status if available
		if exitErr, ok := err.(*exec.ExitError); ok {
			return outBuf.String(), errBuf.String(), fmt.Errorf("exit %d: %w", exitErr.ExitCode(), err)
		}
		return outBuf.String(), errBuf.String(), err
	}
	return outBuf.String(), errBuf.String(), nil
}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}
