// Package importer reads agenda datasets from JSON or YAML files.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadDataset reads a dataset file. The format is chosen by extension:
// .yaml/.yml parse as YAML, anything else as JSON.
func LoadDataset(path string) (*domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	return ParseDataset(data, filepath.Ext(path))
}

// ParseDataset decodes raw dataset bytes. ext selects the decoder as in
// LoadDataset.
func ParseDataset(data []byte, ext string) (*domain.Dataset, error) {
	var ds domain.Dataset
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing YAML dataset: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing JSON dataset: %w", err)
		}
	}
	normalizePostpone(&ds)
	return &ds, nil
}

// normalizePostpone canonicalizes case ("yes" -> "Yes") and fills blanks
// with No. Values that do not parse are left for validation to report.
func normalizePostpone(ds *domain.Dataset) {
	for i := range ds.Items {
		raw := string(ds.Items[i].Postpone)
		if raw == "" {
			ds.Items[i].Postpone = domain.PostponeNo
			continue
		}
		if p, err := domain.ParsePostpone(raw); err == nil {
			ds.Items[i].Postpone = p
		}
	}
}
