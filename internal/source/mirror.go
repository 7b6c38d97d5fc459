package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/repository"
)

// MirrorSource serves the most recent dataset imported into the local
// database.
type MirrorSource struct {
	repo repository.DatasetRepo
}

// NewMirrorSource reads from repo.
func NewMirrorSource(repo repository.DatasetRepo) *MirrorSource {
	return &MirrorSource{repo: repo}
}

func (*MirrorSource) Name() string { return NameMirror }

func (s *MirrorSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	rec, err := s.repo.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: mirror is empty, run import first", ErrSourceUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: mirror: %v", ErrSourceUnavailable, err)
	}
	return &rec.Dataset, nil
}
