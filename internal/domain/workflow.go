// Package domain implements the screenset copy pipeline: it extracts the declared ids of
// a screenset, derives their renamed counterparts and rewrites every copied file.
//
// Rewriting is a best-effort lexical substitution over flat text, not a scope-aware
// rename. Comments and strings that happen to match a rewrite pattern are rewritten too.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/adapter"
	"github.com/beyond-event-horizon/HAI3-sub001/internal/controller"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// CopyArgs contains the arguments for copying a screenset.
type CopyArgs struct {
	CopyOptions
	Reports  m.Path
	NoReport bool
}

// InspectArgs contains the arguments for showing a screenset's ids. When Target is set
// the transformation map towards it is shown as well.
type InspectArgs struct {
	Source        m.ScreensetID
	Target        m.ScreensetID
	ScreensetsDir m.Path
	IDsFile       string
}

// ViewArgs contains the arguments for listing saved copy reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the user-facing screenset operations.
type Workflow interface {
	Copy(ctx context.Context, args CopyArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	copier Copier
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	copier Copier,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		copier:      copier,
	}
}

func (w *workflow) Copy(ctx context.Context, args CopyArgs) error {
	mode := controller.WithCopyMode()
	if args.DryRun {
		mode = controller.WithDryRunMode()
	}

	if err := w.Start(ctx, mode); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	result, err := w.copier.Copy(ctx, args.CopyOptions)
	if err != nil {
		slog.Error("Failed to copy screenset", "source", args.Source, "target", args.Target, "error", err)
		return fmt.Errorf("copy screenset: %w", err)
	}

	if !args.DryRun {
		slog.Debug("Wrote screenset files", "target", result.TargetDir, "paths", result.WrittenPaths())
	}

	if !args.DryRun && !args.NoReport {
		report := m.CopyReport{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Result:    result,
		}

		path, err := w.SaveReport(ctx, args.Reports, report)
		if err != nil {
			slog.Error("Failed to save copy report", "dir", args.Reports, "error", err)
			return fmt.Errorf("save report: %w", err)
		}

		slog.Info("Saved copy report", "path", path)
	}

	if err := w.DisplayCopyResult(ctx, result); err != nil {
		slog.Error("Failed to display copy result", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	if args.Target != "" && !args.Target.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidScreensetID, args.Target)
	}

	if err := w.Start(ctx, controller.WithInspectMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	ids, err := w.copier.LoadIDs(ctx, args.ScreensetsDir, args.IDsFile, args.Source)
	if err != nil {
		return fmt.Errorf("load ids: %w", err)
	}

	if err := w.DisplayIDs(ctx, args.Source, ids); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Target != "" {
		transformations := BuildTransformationMap(args.Source, args.Target, ids)
		if err := w.DisplayTransformations(ctx, args.Source, args.Target, transformations); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load copy reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}
