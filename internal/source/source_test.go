package source

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/agendadesk/internal/domain"
	"github.com/alexanderramin/agendadesk/internal/repository"
	"github.com/alexanderramin/agendadesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureSource_Fetch(t *testing.T) {
	ds, err := NewFixtureSource().Fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ds.Agenda)
	assert.True(t, ds.Agenda.HasLunch())
	assert.Len(t, ds.Items, 8)
	for _, it := range ds.Items {
		assert.True(t, it.Postpone.Valid())
	}
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"id":"x","agendaItem":"One"}]}`), 0o644))

	ds, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Items, 1)
	assert.Equal(t, domain.PostponeNo, ds.Items[0].Postpone)
}

func TestFileSource_InvalidDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"id":"x"}]}`), 0o644))

	_, err := NewFileSource(path).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "agendaItem is required")
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource("").Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "gone.yaml")).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestMirrorSource(t *testing.T) {
	repo := repository.NewSQLiteDatasetRepo(testutil.NewTestDB(t))
	src := NewMirrorSource(repo)
	ctx := context.Background()

	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	rec := testutil.NewTestImportedDataset(NameFixture, domain.Dataset{Items: testutil.NewTestItems(2)})
	require.NoError(t, repo.Save(ctx, rec))

	ds, err := src.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.Items, 2)
}

func TestForName(t *testing.T) {
	for _, name := range []string{"", "fixture", "FILE", "servicenow"} {
		src, err := ForName(name, Options{})
		require.NoError(t, err, name)
		assert.NotNil(t, src)
	}

	_, err := ForName("mirror", Options{})
	assert.ErrorIs(t, err, ErrUnknownSource)

	src, err := ForName("mirror", Options{Mirror: repository.NewSQLiteDatasetRepo(testutil.NewTestDB(t))})
	require.NoError(t, err)
	assert.Equal(t, NameMirror, src.Name())

	_, err = ForName("ftp", Options{})
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))
	obs.OnFetchComplete(context.Background(), FetchEvent{Source: NameServiceNow, Records: 3, Success: true})
	obs.OnFetchComplete(context.Background(), FetchEvent{Source: NameServiceNow, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=source_fetch source=servicenow")
	assert.Contains(t, out, "records=3")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error_code=TIMEOUT")

	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}
