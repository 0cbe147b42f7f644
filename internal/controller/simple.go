package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayIDs prints the declarations found in a screenset's ids file.
func (s *SimpleUI) DisplayIDs(ctx context.Context, source m.ScreensetID, ids []m.IDConstant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Screenset %q declares %d id(s)\n\n%s", source, len(ids), renderIDsTable(ids))

	return nil
}

// DisplayTransformations prints the transformation map.
func (s *SimpleUI) DisplayTransformations(ctx context.Context, source, target m.ScreensetID, transformations []m.IDTransformation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Transformations %s -> %s\n\n%s", source, target, renderTransformationsTable(transformations))

	return nil
}

// DisplayCopyResult prints files, syntax issues, hooks and (for dry runs) diffs.
func (s *SimpleUI) DisplayCopyResult(ctx context.Context, result m.CopyResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n", copySummary(result))
	s.printf("%s\n", renderTransformationsTable(result.Transformations))
	s.printf("%s", renderFilesTable(result.Files))

	if result.DryRun {
		if diffs := renderDiffs(result.Files); diffs != "" {
			s.printf("\n%s", diffs)
		}
	}

	if len(result.Issues) > 0 {
		s.printf("\nSyntax issues (%d):\n%s", len(result.Issues), renderIssues(result.Issues))
	}

	if len(result.Hooks) > 0 {
		s.printf("\nHooks:\n%s", renderHooks(result.Hooks))
	}

	return nil
}

// DisplayReports prints previously saved copy reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.CopyReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No copy reports found\n")
		return nil
	}

	s.printf("%s", renderReportsTable(reports))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
