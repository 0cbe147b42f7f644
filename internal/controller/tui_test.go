package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

func TestTUI_PrintsWhenContentFits(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ctx := context.Background()

	ran := false
	ui.runProgram = func(tea.Model) error {
		ran = true
		return nil
	}

	require.NoError(t, ui.Start(ctx, WithInspectMode()))
	require.NoError(t, ui.DisplayIDs(ctx, "chat", []m.IDConstant{{Name: "CHAT_SCREENSET_ID", Value: "chat"}}))
	ui.Wait(ctx)
	ui.Close(ctx)

	assert.False(t, ran)
	assert.Contains(t, out.String(), "hai3 screenset inspect")
	assert.Contains(t, out.String(), "CHAT_SCREENSET_ID")
}

func TestTUI_PagesLongContent(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ctx := context.Background()

	var got tea.Model
	ui.runProgram = func(model tea.Model) error {
		got = model
		return nil
	}

	require.NoError(t, ui.Start(ctx, WithDryRunMode()))
	ui.height = 5

	result := sampleCopyResult()
	result.DryRun = true
	require.NoError(t, ui.DisplayCopyResult(ctx, result))
	ui.Wait(ctx)

	require.NotNil(t, got)
	assert.Empty(t, out.String())

	view := got.View()
	assert.Contains(t, view, "hai3 screenset dry run")
	assert.Contains(t, view, "q quit")
}

func TestTUI_WaitWithoutContentPrintsNothing(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	ui.Wait(ctx)

	assert.Empty(t, out.String())
}

func TestTUI_DisplayReportsEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithViewMode()))
	require.NoError(t, ui.DisplayReports(ctx, nil))
	ui.Wait(ctx)

	assert.Contains(t, out.String(), "No copy reports found")
}

func TestPagerModel_Update(t *testing.T) {
	content := strings.Repeat("line\n", 50)
	model := newPagerModel("title", content, 40, 10)

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Nil(t, cmd)

	pm, ok := updated.(pagerModel)
	require.True(t, ok)
	assert.Equal(t, 80, pm.viewport.Width)
	assert.Equal(t, 18, pm.viewport.Height)

	_, cmd = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNeedsPagination(t *testing.T) {
	assert.False(t, needsPagination("a\nb\n", 0))
	assert.False(t, needsPagination("a\nb\n", 10))
	assert.True(t, needsPagination(strings.Repeat("x\n", 20), 10))
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestStartMode_String(t *testing.T) {
	assert.Equal(t, "copy", ModeCopy.String())
	assert.Equal(t, "dry run", ModeDryRun.String())
	assert.Equal(t, "inspect", ModeInspect.String())
	assert.Equal(t, "reports", ModeView.String())
	assert.Equal(t, "unknown", StartMode(99).String())
}
