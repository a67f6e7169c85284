package videos

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrCatalogUnavailable indicates the video list could not be read
var ErrCatalogUnavailable = errors.New("video catalog unavailable")

// Catalog provides the static list of known trajectory videos
type Catalog interface {
	Videos() ([]string, error)
}

// catalogFile is the on-disk shape of the catalog: {"videos": [...]}
type catalogFile struct {
	Videos []string `json:"videos"`
}

// FileCatalog reads the video list from a JSON file once and caches it.
// The catalog is static per deployment, so the cache is only refreshed
// by an explicit Reload (or a process restart).
type FileCatalog struct {
	path string

	mu     sync.RWMutex
	videos []string
}

// NewFileCatalog creates a catalog backed by the given JSON file and
// performs the initial load
func NewFileCatalog(path string) (*FileCatalog, error) {
	c := &FileCatalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Videos returns the cached video list
func (c *FileCatalog) Videos() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.videos == nil {
		return nil, fmt.Errorf("%w: catalog not loaded", ErrCatalogUnavailable)
	}

	out := make([]string, len(c.videos))
	copy(out, c.videos)
	return out, nil
}

// Reload re-reads the catalog file and replaces the cached list
func (c *FileCatalog) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrCatalogUnavailable, c.path, err)
	}

	var parsed catalogFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrCatalogUnavailable, c.path, err)
	}
	if parsed.Videos == nil {
		return fmt.Errorf("%w: %s has no videos key", ErrCatalogUnavailable, c.path)
	}

	c.mu.Lock()
	c.videos = parsed.Videos
	c.mu.Unlock()
	return nil
}
