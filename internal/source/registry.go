package source

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/agendadesk/internal/repository"
)

// Options carries what each named source needs to be built.
type Options struct {
	File       string
	ServiceNow ServiceNowConfig
	Observer   Observer
	Mirror     repository.DatasetRepo
}

// Names lists the accepted source names.
func Names() []string {
	return []string{NameFixture, NameFile, NameServiceNow, NameMirror}
}

// ForName builds the source called name.
func ForName(name string, opts Options) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameFixture:
		return NewFixtureSource(), nil
	case NameFile:
		return NewFileSource(opts.File), nil
	case NameServiceNow:
		return NewServiceNowSource(opts.ServiceNow, opts.Observer), nil
	case NameMirror:
		if opts.Mirror == nil {
			return nil, fmt.Errorf("%w: mirror needs a database", ErrUnknownSource)
		}
		return NewMirrorSource(opts.Mirror), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSource, name, strings.Join(Names(), ", "))
}
