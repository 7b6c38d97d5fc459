package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/importer"
)

// FileSource reads a JSON or YAML dataset from disk.
type FileSource struct {
	Path string
}

// NewFileSource returns a source for the dataset at path.
func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

func (*FileSource) Name() string { return NameFile }

func (s *FileSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return nil, fmt.Errorf("%w: no dataset file configured", ErrSourceUnavailable)
	}
	ds, err := importer.LoadDataset(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if errs := importer.ValidateDataset(ds); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.Path, errors.Join(errs...))
	}
	return ds, nil
}
