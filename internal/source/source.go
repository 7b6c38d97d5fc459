// Package source provides the data sources an agenda can be loaded from.
// Every source returns a domain.Dataset; none of them retries.
package source

import (
	"context"
	"errors"

	"github.com/alexanderramin/agendadesk/internal/domain"
)

var (
	// ErrSourceUnavailable indicates the source could not produce data:
	// network failure, bad status, undecodable payload, or no records.
	ErrSourceUnavailable = errors.New("agenda source unavailable")

	// ErrUnknownSource indicates a source name that ForName does not know.
	ErrUnknownSource = errors.New("unknown agenda source")
)

// Source supplies one dataset per Fetch call.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*domain.Dataset, error)
}

// Source names accepted by --source and AGENDADESK_SOURCE.
const (
	NameFixture    = "fixture"
	NameFile       = "file"
	NameServiceNow = "servicenow"
	NameMirror     = "mirror"
)
