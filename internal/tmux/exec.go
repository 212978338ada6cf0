// Package tmux runs the handful of tmux CLI commands the popup needs.
package tmux

import (
	"context"
	"os/exec"
)

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

var runExecCommand = func(ctx context.Context, name string, args ...string) commander {
	return realCommander{cmd: exec.CommandContext(ctx, name, args...)}
}
