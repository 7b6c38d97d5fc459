package source

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/importer"
)

//go:embed fixtures/agenda.json
var fixtureJSON []byte

// FixtureSource serves the built-in mock agenda.
type FixtureSource struct{}

// NewFixtureSource returns the mock-data source.
func NewFixtureSource() *FixtureSource { return &FixtureSource{} }

func (*FixtureSource) Name() string { return NameFixture }

func (*FixtureSource) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := importer.ParseDataset(fixtureJSON, ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: fixture: %v", ErrSourceUnavailable, err)
	}
	return ds, nil
}
