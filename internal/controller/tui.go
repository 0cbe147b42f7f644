package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	issueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea. Output is buffered while the workflow runs and
// shown on Wait: printed directly when it fits the terminal, paged otherwise.
type TUI struct {
	output io.Writer

	mu       sync.Mutex
	mode     StartMode
	sections []string
	width    int
	height   int

	runProgram func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.runProgram = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen()).Run()
		return err
	}

	return t
}

// Start resets the buffered output and records the mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := resolveStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = cfg.mode
	t.sections = nil

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			t.width, t.height = width, height
		}
	}

	return nil
}

// Close drops any buffered output.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	t.sections = nil
	t.mu.Unlock()
}

// Wait renders the buffered output, paging it when it does not fit the terminal.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	title := titleStyle.Render(fmt.Sprintf("hai3 screenset %s", t.mode))
	content := strings.Join(t.sections, "\n")
	width, height := t.width, t.height
	t.mu.Unlock()

	if content == "" {
		return
	}

	if !needsPagination(content, height) {
		_, _ = fmt.Fprintf(t.output, "%s\n\n%s\n", title, content)
		return
	}

	_ = t.runProgram(newPagerModel(title, content, width, height))
}

// DisplayIDs buffers the declarations table.
func (t *TUI) DisplayIDs(ctx context.Context, source m.ScreensetID, ids []m.IDConstant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.add(headingStyle.Render(fmt.Sprintf("%s: %d id(s)", source, len(ids))), renderIDsTable(ids))

	return nil
}

// DisplayTransformations buffers the transformation map.
func (t *TUI) DisplayTransformations(ctx context.Context, source, target m.ScreensetID, transformations []m.IDTransformation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.add(headingStyle.Render(fmt.Sprintf("Transformations %s → %s", source, target)), renderTransformationsTable(transformations))

	return nil
}

// DisplayCopyResult buffers every part of a copy result.
func (t *TUI) DisplayCopyResult(ctx context.Context, result m.CopyResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.add(headingStyle.Render(copySummary(result)))
	t.add(headingStyle.Render("Transformations"), renderTransformationsTable(result.Transformations))
	t.add(headingStyle.Render("Files"), renderFilesTable(result.Files))

	if result.DryRun {
		if diffs := renderDiffs(result.Files); diffs != "" {
			t.add(headingStyle.Render("Diff"), diffs)
		}
	}

	if len(result.Issues) > 0 {
		t.add(issueStyle.Render(fmt.Sprintf("Syntax issues (%d)", len(result.Issues))), renderIssues(result.Issues))
	}

	if len(result.Hooks) > 0 {
		t.add(headingStyle.Render("Hooks"), renderHooks(result.Hooks))
	}

	return nil
}

// DisplayReports buffers the saved reports table.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.CopyReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		t.add(footerStyle.Render("No copy reports found"))
		return nil
	}

	t.add(headingStyle.Render("Copy reports"), renderReportsTable(reports))

	return nil
}

func (t *TUI) add(parts ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sections = append(t.sections, strings.Join(parts, "\n"))
}

func needsPagination(content string, height int) bool {
	if height <= 0 {
		return false
	}

	// Title, blank line and trailing newline take three rows.
	return strings.Count(content, "\n")+3 > height
}

// pagerModel is the Bubble Tea model that scrolls long output.
type pagerModel struct {
	title    string
	viewport viewport.Model
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-2, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-2, 1)

		return pm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100))

	return pm.title + "\n" + pm.viewport.View() + "\n" + footer
}
