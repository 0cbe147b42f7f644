package model

import "time"

// FileChange describes one file produced by a copy.
type FileChange struct {
	Source File `yaml:"source"`
	Target File `yaml:"target"`
	// Rewritten is true when the content differs from the source file.
	Rewritten bool `yaml:"rewritten"`
	// Diff holds a unified diff of the content change (dry runs only).
	Diff string `yaml:"-"`
}

// SyntaxIssue is a non-fatal parse problem found in a copied file.
type SyntaxIssue struct {
	Path    Path   `yaml:"path"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Message string `yaml:"message"`
}

// HookResult captures the outcome of a post-copy hook command.
type HookResult struct {
	Command string `yaml:"command"`
	Output  string `yaml:"output,omitempty"`
	Err     string `yaml:"error,omitempty"`
}

// CopyResult is everything a screenset copy produced.
type CopyResult struct {
	Source          ScreensetID        `yaml:"source"`
	Target          ScreensetID        `yaml:"target"`
	Category        Category           `yaml:"category,omitempty"`
	TargetDir       Path               `yaml:"target_dir"`
	DryRun          bool               `yaml:"dry_run"`
	Transformations []IDTransformation `yaml:"transformations"`
	Files           []FileChange       `yaml:"files"`
	Issues          []SyntaxIssue      `yaml:"issues,omitempty"`
	Hooks           []HookResult       `yaml:"hooks,omitempty"`
}

// WrittenPaths returns the target paths of every produced file, in order.
func (r CopyResult) WrittenPaths() []Path {
	paths := make([]Path, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.Target.FullPath)
	}

	return paths
}

// CopyReport is the persisted form of a CopyResult.
type CopyReport struct {
	ID        string     `yaml:"id"`
	CreatedAt time.Time  `yaml:"created_at"`
	Result    CopyResult `yaml:"result"`
}
