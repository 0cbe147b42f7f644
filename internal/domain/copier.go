package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/adapter"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// DefaultIDsFile is the declarations file every screenset carries.
const DefaultIDsFile = "ids.ts"

// DefaultParallel is the number of files processed at once when no limit is given.
const DefaultParallel = 4

// DefaultTextExtensions lists the file extensions whose content is rewritten.
// Everything else is copied byte for byte.
var DefaultTextExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".json", ".md", ".css", ".scss"}

// CopyOptions describes one screenset copy.
type CopyOptions struct {
	Source         m.ScreensetID
	Target         m.ScreensetID
	Category       m.Category
	ScreensetsDir  m.Path
	IDsFile        string
	TextExtensions []string
	Parallel       int
	DryRun         bool
	Verify         bool
	Hooks          []string
}

// Copier duplicates a screenset directory under a new identifier.
type Copier interface {
	LoadIDs(ctx context.Context, screensetsDir m.Path, idsFile string, id m.ScreensetID) ([]m.IDConstant, error)
	Copy(ctx context.Context, opts CopyOptions) (m.CopyResult, error)
}

type copier struct {
	adapter.SourceFSAdapter
	adapter.SyntaxAdapter
	adapter.HookRunnerAdapter
}

// NewCopier constructs a Copier backed by the provided adapters.
func NewCopier(
	fsAdapter adapter.SourceFSAdapter,
	syntaxAdapter adapter.SyntaxAdapter,
	hookRunner adapter.HookRunnerAdapter,
) Copier {
	return &copier{
		SourceFSAdapter:   fsAdapter,
		SyntaxAdapter:     syntaxAdapter,
		HookRunnerAdapter: hookRunner,
	}
}

// copyJob is one file of the source screenset, addressed relative to its root.
type copyJob struct {
	sourceRel string
	targetRel string
	mode      os.FileMode
}

// fileOutcome is what processing one job produced.
type fileOutcome struct {
	change m.FileChange
	issues []m.SyntaxIssue
}

// LoadIDs reads and parses the declarations file of a screenset.
func (c *copier) LoadIDs(ctx context.Context, screensetsDir m.Path, idsFile string, id m.ScreensetID) ([]m.IDConstant, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScreensetID, id)
	}

	if idsFile == "" {
		idsFile = DefaultIDsFile
	}

	screensetDir := c.JoinPath(ctx, string(screensetsDir), string(id))

	exists, err := c.Exists(ctx, screensetDir)
	if err != nil {
		return nil, fmt.Errorf("stat screenset %s: %w", screensetDir, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrScreensetNotFound, screensetDir)
	}

	idsPath := c.JoinPath(ctx, string(screensetDir), idsFile)

	exists, err = c.Exists(ctx, idsPath)
	if err != nil {
		return nil, fmt.Errorf("stat ids file %s: %w", idsPath, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrIDsFileNotFound, idsPath)
	}

	content, err := c.ReadFile(ctx, idsPath)
	if err != nil {
		slog.Error("Failed to read ids file", "path", idsPath, "error", err)
		return nil, fmt.Errorf("read ids file: %w", err)
	}

	ids := ExtractIDs(string(content))
	slog.Debug("Extracted ids", "screenset", id, "count", len(ids))

	return ids, nil
}

// Copy duplicates opts.Source into opts.Target. On a dry run nothing is written and
// every rewritten file carries a unified diff. A failed copy removes the partial target.
func (c *copier) Copy(ctx context.Context, opts CopyOptions) (m.CopyResult, error) {
	if err := validateCopyOptions(opts); err != nil {
		return m.CopyResult{}, err
	}

	sourceDir := c.JoinPath(ctx, string(opts.ScreensetsDir), string(opts.Source))
	targetDir := c.JoinPath(ctx, string(opts.ScreensetsDir), string(opts.Target))

	exists, err := c.Exists(ctx, targetDir)
	if err != nil {
		return m.CopyResult{}, fmt.Errorf("stat target %s: %w", targetDir, err)
	}

	if exists {
		return m.CopyResult{}, fmt.Errorf("%w: %s", ErrTargetExists, targetDir)
	}

	ids, err := c.LoadIDs(ctx, opts.ScreensetsDir, opts.IDsFile, opts.Source)
	if err != nil {
		return m.CopyResult{}, err
	}

	transformations := BuildTransformationMap(opts.Source, opts.Target, ids)

	var rewriterOptions []RewriterOption
	if opts.Category != "" {
		rewriterOptions = append(rewriterOptions, WithCategory(opts.Category))
	}

	rewriter := NewRewriter(opts.Source, opts.Target, transformations, rewriterOptions...)

	jobs, err := c.collectJobs(ctx, sourceDir, opts)
	if err != nil {
		return m.CopyResult{}, err
	}

	slog.Info("Copying screenset", "source", opts.Source, "target", opts.Target, "files", len(jobs), "dryRun", opts.DryRun)

	outcomes, err := c.processJobs(ctx, jobs, rewriter, sourceDir, targetDir, opts)
	if err != nil {
		if !opts.DryRun {
			c.rollback(ctx, targetDir)
		}

		return m.CopyResult{}, err
	}

	result := m.CopyResult{
		Source:          opts.Source,
		Target:          opts.Target,
		Category:        opts.Category,
		TargetDir:       targetDir,
		DryRun:          opts.DryRun,
		Transformations: transformations,
		Files:           make([]m.FileChange, 0, len(outcomes)),
	}

	for _, outcome := range outcomes {
		result.Files = append(result.Files, outcome.change)
		result.Issues = append(result.Issues, outcome.issues...)
	}

	if !opts.DryRun {
		result.Hooks = c.runHooks(ctx, targetDir, opts.Hooks)
	}

	return result, nil
}

func validateCopyOptions(opts CopyOptions) error {
	for _, id := range []m.ScreensetID{opts.Source, opts.Target} {
		if !id.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidScreensetID, id)
		}
	}

	if opts.Category != "" && !opts.Category.Valid() {
		return fmt.Errorf("%w: %q (want one of %v)", ErrInvalidCategory, opts.Category, m.Categories)
	}

	return nil
}

func (c *copier) collectJobs(ctx context.Context, sourceDir m.Path, opts CopyOptions) ([]copyJob, error) {
	var jobs []copyJob

	err := c.Walk(ctx, sourceDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := c.RelPath(ctx, sourceDir, m.Path(p))
		if err != nil {
			return err
		}

		sourceRel := filepath.ToSlash(string(rel))
		jobs = append(jobs, copyJob{
			sourceRel: sourceRel,
			targetRel: RenamePath(sourceRel, opts.Source, opts.Target),
			mode:      info.Mode().Perm(),
		})

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk screenset", "dir", sourceDir, "error", err)
		return nil, fmt.Errorf("walk %s: %w", sourceDir, err)
	}

	return jobs, nil
}

func (c *copier) processJobs(
	ctx context.Context,
	jobs []copyJob,
	rewriter *Rewriter,
	sourceDir, targetDir m.Path,
	opts CopyOptions,
) ([]fileOutcome, error) {
	textExtensions := opts.TextExtensions
	if len(textExtensions) == 0 {
		textExtensions = DefaultTextExtensions
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	outcomes := make([]fileOutcome, len(jobs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, job := range jobs {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			outcome, err := c.processJob(groupCtx, job, rewriter, sourceDir, targetDir, isTextFile(job.sourceRel, textExtensions), opts)
			if err != nil {
				return err
			}

			outcomes[i] = outcome

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (c *copier) processJob(
	ctx context.Context,
	job copyJob,
	rewriter *Rewriter,
	sourceDir, targetDir m.Path,
	text bool,
	opts CopyOptions,
) (fileOutcome, error) {
	sourcePath := c.JoinPath(ctx, string(sourceDir), filepath.FromSlash(job.sourceRel))
	targetPath := c.JoinPath(ctx, string(targetDir), filepath.FromSlash(job.targetRel))

	content, err := c.ReadFile(ctx, sourcePath)
	if err != nil {
		slog.Error("Failed to read file", "path", sourcePath, "error", err)
		return fileOutcome{}, fmt.Errorf("read %s: %w", sourcePath, err)
	}

	output := content
	if text {
		output = []byte(rewriter.Rewrite(string(content)))
	}

	outcome := fileOutcome{
		change: m.FileChange{
			Source:    m.File{FullPath: sourcePath, ShortPath: m.Path(job.sourceRel)},
			Target:    m.File{FullPath: targetPath, ShortPath: m.Path(job.targetRel)},
			Rewritten: text && string(output) != string(content),
		},
	}

	if opts.DryRun {
		if outcome.change.Rewritten {
			outcome.change.Diff = unifiedDiff(job, string(content), string(output))
		}
	} else if err := c.WriteFile(ctx, targetPath, output, job.mode); err != nil {
		slog.Error("Failed to write file", "path", targetPath, "error", err)
		return fileOutcome{}, fmt.Errorf("write %s: %w", targetPath, err)
	}

	if opts.Verify && c.SyntaxAdapter != nil && c.Supports(m.Path(job.targetRel)) {
		issues, err := c.Check(ctx, m.Path(job.targetRel), output)
		if err != nil {
			slog.Warn("Syntax check failed", "path", job.targetRel, "error", err)
		}

		outcome.issues = issues
	}

	return outcome, nil
}

func (c *copier) rollback(ctx context.Context, targetDir m.Path) {
	// Cleanup must run even when ctx is what cancelled the copy.
	cleanupCtx := context.WithoutCancel(ctx)
	if err := c.RemoveAll(cleanupCtx, targetDir); err != nil {
		slog.Error("Failed to remove partial copy", "dir", targetDir, "error", err)
	}
}

func (c *copier) runHooks(ctx context.Context, targetDir m.Path, hooks []string) []m.HookResult {
	if len(hooks) == 0 || c.HookRunnerAdapter == nil {
		return nil
	}

	results := make([]m.HookResult, 0, len(hooks))

	for _, hook := range hooks {
		output, err := c.Run(ctx, string(targetDir), hook)

		result := m.HookResult{Command: hook, Output: output}
		if err != nil {
			slog.Warn("Post-copy hook failed", "command", hook, "error", err)
			result.Err = err.Error()
		}

		results = append(results, result)
	}

	return results
}

func isTextFile(rel string, textExtensions []string) bool {
	ext := strings.ToLower(path.Ext(rel))
	for _, candidate := range textExtensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}

	return false
}

func unifiedDiff(job copyJob, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + job.sourceRel,
		ToFile:   "b/" + job.targetRel,
		Context:  3,
	})
	if err != nil {
		return ""
	}

	return diff
}
