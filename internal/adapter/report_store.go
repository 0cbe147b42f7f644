package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

const reportFilePrefix = "copy-"

// ReportStore persists copy reports so they can be reviewed later.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.CopyReport) (m.Path, error)
	LoadReports(ctx context.Context, dir m.Path) ([]m.CopyReport, error)
}

// YAMLReportStore stores one YAML document per copy.
type YAMLReportStore struct{}

// NewReportStore constructs the default YAML-backed ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to dir/copy-<id>.yaml and returns the file path.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.CopyReport) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if report.ID == "" {
		return "", errors.New("report id is required")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFilePrefix+report.ID+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReports reads every copy report in dir, oldest first. A missing dir yields no reports.
func (s *YAMLReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.CopyReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.CopyReport

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, reportFilePrefix) || filepath.Ext(name) != ".yaml" {
			continue
		}

		// #nosec G304 - entries come from the configured reports directory
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}

		var report m.CopyReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", name, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}
