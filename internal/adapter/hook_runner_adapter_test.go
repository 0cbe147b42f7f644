package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLocalHookRunnerAdapter_Run_Success(t *testing.T) {
	adapter := NewLocalHookRunnerAdapter(10 * time.Second)

	out, err := adapter.Run(context.Background(), t.TempDir(), `echo "hello screenset"`)
	if err != nil {
		t.Fatalf("Run() error = %v, output = %s", err, out)
	}

	if strings.TrimSpace(out) != "hello screenset" {
		t.Fatalf("Run() output = %q, want %q", out, "hello screenset")
	}
}

func TestLocalHookRunnerAdapter_Run_UsesWorkDir(t *testing.T) {
	adapter := NewLocalHookRunnerAdapter(0)

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "marker.txt"), "")

	out, err := adapter.Run(context.Background(), dir, "ls")
	if err != nil {
		t.Fatalf("Run() error = %v, output = %s", err, out)
	}

	if !strings.Contains(out, "marker.txt") {
		t.Fatalf("Run() output = %q, expected it to list marker.txt", out)
	}
}

func TestLocalHookRunnerAdapter_Run_Failure(t *testing.T) {
	adapter := NewLocalHookRunnerAdapter(10 * time.Second)

	_, err := adapter.Run(context.Background(), os.TempDir(), "hai3-command-that-does-not-exist --flag")
	if err == nil {
		t.Fatalf("Run() expected error for missing executable")
	}
}

func TestLocalHookRunnerAdapter_Run_EmptyCommand(t *testing.T) {
	adapter := NewLocalHookRunnerAdapter(0)

	_, err := adapter.Run(context.Background(), os.TempDir(), "   ")
	if !errors.Is(err, ErrEmptyHook) {
		t.Fatalf("Run() error = %v, want ErrEmptyHook", err)
	}
}

func TestLocalHookRunnerAdapter_Run_BadQuoting(t *testing.T) {
	adapter := NewLocalHookRunnerAdapter(0)

	_, err := adapter.Run(context.Background(), os.TempDir(), `echo "unterminated`)
	if err == nil {
		t.Fatalf("Run() expected parse error for unterminated quote")
	}
}
