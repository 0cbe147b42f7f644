// Package controller provides output adapters for displaying screenset copy results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCopy StartMode = iota
	ModeDryRun
	ModeInspect
	ModeView
)

// String returns a short human label for the mode.
func (s StartMode) String() string {
	switch s {
	case ModeCopy:
		return "copy"
	case ModeDryRun:
		return "dry run"
	case ModeInspect:
		return "inspect"
	case ModeView:
		return "reports"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCopyMode sets the UI to copy mode.
func WithCopyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCopy
	}
}

// WithDryRunMode sets the UI to dry-run mode.
func WithDryRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDryRun
	}
}

// WithInspectMode sets the UI to id inspection mode.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeCopy}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying screenset operations.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayIDs(ctx context.Context, source m.ScreensetID, ids []m.IDConstant) error
	DisplayTransformations(ctx context.Context, source, target m.ScreensetID, transformations []m.IDTransformation) error
	DisplayCopyResult(ctx context.Context, result m.CopyResult) error
	DisplayReports(ctx context.Context, reports []m.CopyReport) error
}

// NewUI returns a TUI when attached to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
