package tmux

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBuffer is returned when the paste buffer exists but holds nothing.
var ErrEmptyBuffer = errors.New("tmux paste buffer is empty")

// ShowBuffer returns the contents of the most recent tmux paste buffer, or
// of the named buffer when name is set.
func ShowBuffer(ctx context.Context, socketPath, name string) (string, error) {
	args := append(baseArgs(socketPath), "show-buffer")
	if target := strings.TrimSpace(name); target != "" {
		args = append(args, "-b", target)
	}
	cmd := runExecCommand(ctx, "tmux", args...)
	output, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("show-buffer: %w", ctxErr)
		}
		return "", fmt.Errorf("show-buffer: %w", err)
	}
	if len(output) == 0 {
		return "", ErrEmptyBuffer
	}
	return string(output), nil
}
