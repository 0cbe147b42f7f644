package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func renderIDsTable(ids []m.IDConstant) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Constant", "Value"})
	for _, id := range ids {
		table.Append([]string{id.Name, id.Value})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(ids)), ""})
	table.Render()

	return buf.String()
}

func renderTransformationsTable(transformations []m.IDTransformation) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Constant", "New Constant", "Value", "New Value"})

	changed := 0

	for _, tr := range transformations {
		if tr.NameChanged() || tr.ValueChanged() {
			changed++
		}

		table.Append([]string{
			tr.OriginalConstName,
			unchangedMark(tr.NewConstName, tr.NameChanged()),
			tr.OriginalValue,
			unchangedMark(tr.NewValue, tr.ValueChanged()),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Changed %d/%d", changed, len(transformations)), "", "", ""})
	table.Render()

	return buf.String()
}

func unchangedMark(value string, changed bool) string {
	if changed {
		return value
	}

	return "="
}

func renderFilesTable(files []m.FileChange) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Source", "Target", "Content"})

	rewritten := 0

	for _, f := range files {
		status := "copied"
		if f.Rewritten {
			status = "rewritten"
			rewritten++
		}

		table.Append([]string{string(f.Source.ShortPath), string(f.Target.ShortPath), status})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), "", fmt.Sprintf("%d rewritten", rewritten)})
	table.Render()

	return buf.String()
}

func renderIssues(issues []m.SyntaxIssue) string {
	var b strings.Builder

	for _, issue := range issues {
		fmt.Fprintf(&b, "%s:%d:%d: %s\n", issue.Path, issue.Line, issue.Column, issue.Message)
	}

	return b.String()
}

func renderHooks(hooks []m.HookResult) string {
	var b strings.Builder

	for _, hook := range hooks {
		status := "ok"
		if hook.Err != "" {
			status = "failed: " + hook.Err
		}

		fmt.Fprintf(&b, "$ %s (%s)\n", hook.Command, status)

		if out := strings.TrimSpace(hook.Output); out != "" {
			b.WriteString(out)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderDiffs(files []m.FileChange) string {
	var b strings.Builder

	for _, f := range files {
		if f.Diff == "" {
			continue
		}

		b.WriteString(f.Diff)

		if !strings.HasSuffix(f.Diff, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderReportsTable(reports []m.CopyReport) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"ID", "Created", "Source", "Target", "Files", "Issues"})
	for _, r := range reports {
		table.Append([]string{
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			string(r.Result.Source),
			string(r.Result.Target),
			fmt.Sprintf("%d", len(r.Result.Files)),
			fmt.Sprintf("%d", len(r.Result.Issues)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(reports)), "", "", "", "", ""})
	table.Render()

	return buf.String()
}

func copySummary(result m.CopyResult) string {
	verb := "Copied"
	if result.DryRun {
		verb = "Would copy"
	}

	summary := fmt.Sprintf("%s screenset %q to %q (%s)", verb, result.Source, result.Target, result.TargetDir)
	if result.Category != "" {
		summary += fmt.Sprintf(" [category: %s]", result.Category)
	}

	return summary
}
