package videos

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileCatalogLoads(t *testing.T) {
	path := writeCatalog(t, `{"videos": ["v1.mp4", "v2.mp4"]}`)

	catalog, err := NewFileCatalog(path)
	require.NoError(t, err)

	videos, err := catalog.Videos()
	require.NoError(t, err)
	assert.Equal(t, []string{"v1.mp4", "v2.mp4"}, videos)
}

func TestFileCatalogEmptyListIsValid(t *testing.T) {
	path := writeCatalog(t, `{"videos": []}`)

	catalog, err := NewFileCatalog(path)
	require.NoError(t, err)

	videos, err := catalog.Videos()
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestFileCatalogMissingFile(t *testing.T) {
	_, err := NewFileCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestFileCatalogMalformedJSON(t *testing.T) {
	path := writeCatalog(t, `{"videos": [`)

	_, err := NewFileCatalog(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestFileCatalogMissingVideosKey(t *testing.T) {
	path := writeCatalog(t, `{"clips": ["v1.mp4"]}`)

	_, err := NewFileCatalog(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestFileCatalogReload(t *testing.T) {
	path := writeCatalog(t, `{"videos": ["v1.mp4"]}`)

	catalog, err := NewFileCatalog(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"videos": ["v1.mp4", "v2.mp4"]}`), 0644))
	require.NoError(t, catalog.Reload())

	videos, err := catalog.Videos()
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestFileCatalogReturnsCopy(t *testing.T) {
	path := writeCatalog(t, `{"videos": ["v1.mp4"]}`)

	catalog, err := NewFileCatalog(path)
	require.NoError(t, err)

	videos, _ := catalog.Videos()
	videos[0] = "mutated.mp4"

	again, _ := catalog.Videos()
	assert.Equal(t, "v1.mp4", again[0])
}
