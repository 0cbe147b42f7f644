package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// maxIssuesPerFile bounds how many syntax problems are reported for a single file.
const maxIssuesPerFile = 10

// SyntaxAdapter encapsulates language-specific parsing so the domain layer can verify
// rewritten files without knowing about grammars.
type SyntaxAdapter interface {
	// Supports reports whether a grammar exists for the file's extension.
	Supports(path m.Path) bool

	// Check parses content and returns the syntax problems it contains.
	Check(ctx context.Context, path m.Path, content []byte) ([]m.SyntaxIssue, error)
}

// TreeSitterSyntaxAdapter checks TypeScript and JavaScript sources with tree-sitter.
type TreeSitterSyntaxAdapter struct {
	languages map[string]*sitter.Language
}

// NewTreeSitterSyntaxAdapter constructs a TreeSitterSyntaxAdapter.
func NewTreeSitterSyntaxAdapter() *TreeSitterSyntaxAdapter {
	return &TreeSitterSyntaxAdapter{
		languages: map[string]*sitter.Language{
			".ts":  typescript.GetLanguage(),
			".mts": typescript.GetLanguage(),
			".tsx": tsx.GetLanguage(),
			".js":  javascript.GetLanguage(),
			".jsx": javascript.GetLanguage(),
			".mjs": javascript.GetLanguage(),
		},
	}
}

// Supports reports whether path has a TypeScript or JavaScript extension.
func (a *TreeSitterSyntaxAdapter) Supports(path m.Path) bool {
	_, ok := a.languages[strings.ToLower(filepath.Ext(string(path)))]
	return ok
}

// Check parses content and collects ERROR and MISSING nodes.
func (a *TreeSitterSyntaxAdapter) Check(ctx context.Context, path m.Path, content []byte) ([]m.SyntaxIssue, error) {
	language, ok := a.languages[strings.ToLower(filepath.Ext(string(path)))]
	if !ok {
		return nil, fmt.Errorf("no grammar for %s", path)
	}

	// Parsers are not safe for concurrent use; one per call.
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(language)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil, nil
	}

	var issues []m.SyntaxIssue

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil || len(issues) >= maxIssuesPerFile {
			return
		}

		switch {
		case n.IsMissing():
			issues = append(issues, newSyntaxIssue(path, n, fmt.Sprintf("missing %s", n.Type())))
			return
		case n.IsError():
			issues = append(issues, newSyntaxIssue(path, n, "unexpected syntax"))
			return
		case !n.HasError():
			return
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return issues, nil
}

func newSyntaxIssue(path m.Path, n *sitter.Node, message string) m.SyntaxIssue {
	point := n.StartPoint()

	return m.SyntaxIssue{
		Path:    path,
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Message: message,
	}
}
