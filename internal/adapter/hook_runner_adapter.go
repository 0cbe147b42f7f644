package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/shlex"
)

// ErrEmptyHook is returned when a hook command has no words.
var ErrEmptyHook = errors.New("empty hook command")

// HookRunnerAdapter runs user-configured commands against a freshly copied screenset
// (formatters, lint fixers).
type HookRunnerAdapter interface {
	// Run executes command inside workDir and returns the combined stdout/stderr output.
	Run(ctx context.Context, workDir, command string) (output string, err error)
}

// LocalHookRunnerAdapter provides a concrete implementation using os/exec.
type LocalHookRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalHookRunnerAdapter constructs a LocalHookRunnerAdapter. A zero timeout means
// only the caller's context bounds the command.
func NewLocalHookRunnerAdapter(timeout time.Duration) *LocalHookRunnerAdapter {
	return &LocalHookRunnerAdapter{
		timeout: timeout,
	}
}

// Run splits command with shell quoting rules (no shell is involved) and executes it.
func (a *LocalHookRunnerAdapter) Run(ctx context.Context, workDir, command string) (string, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return "", fmt.Errorf("parse hook %q: %w", command, err)
	}

	if len(args) == 0 {
		return "", ErrEmptyHook
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - hooks come from the project's own hai3.yaml
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}
