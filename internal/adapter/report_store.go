package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// ReportStore persists rewrite results for build pipelines to inspect.
type ReportStore interface {
	SaveReport(path m.Path, result m.Result) error
	LoadReport(path m.Path) (m.Result, error)
}

// YAMLReportStore stores results as YAML files.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes result to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReport(path m.Path, result m.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.Result, error) {
	// #nosec G304 - report path comes from the CLI flag
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Result{}, fmt.Errorf("read report: %w", err)
	}

	var result m.Result
	if err := yaml.Unmarshal(data, &result); err != nil {
		return m.Result{}, fmt.Errorf("unmarshal report: %w", err)
	}

	return result, nil
}
