package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/carotene/sharess-go/tool"
	"github.com/carotene/sharess-go/types"
)

// minPathSegments is the depth a matched path needs so both the filename and
// the owning application id can be recovered.
const minPathSegments = 3

// SplitScreenshotPath decomposes a matched screenshot path into its filename
// (last segment) and owning application id (third-from-last segment). Matches
// with fewer than three segments or empty segments are rejected.
func SplitScreenshotPath(path string) (filename, appID string, err error) {
	segments := strings.Split(filepath.ToSlash(path), "/")
	if len(segments) < minPathSegments {
		return "", "", fmt.Errorf("path %q has fewer than %d segments", path, minPathSegments)
	}
	filename = segments[len(segments)-1]
	appID = segments[len(segments)-3]
	if filename == "" || appID == "" {
		return "", "", fmt.Errorf("path %q has an empty filename or app id segment", path)
	}
	return filename, appID, nil
}

// TitleResolver resolves an application id to a display title.
type TitleResolver interface {
	TitleFor(appID string) (string, bool)
}

// Catalog groups discovered screenshots by owning application and keeps the
// resolved application metadata alongside. Every scan rebuilds both mappings
// wholesale; nothing is merged with prior state.
type Catalog struct {
	resolver TitleResolver

	mu     sync.RWMutex
	images map[string]map[string]types.ImageRecord // appID -> filename -> record
	apps   map[string]types.ApplicationRecord
}

// New creates an empty catalog resolving titles through resolver.
func New(resolver TitleResolver) *Catalog {
	return &Catalog{
		resolver: resolver,
		images:   make(map[string]map[string]types.ImageRecord),
		apps:     make(map[string]types.ApplicationRecord),
	}
}

// Scan enumerates the files matching pattern and replaces the catalog state.
// A pattern with no matches leaves an empty catalog without error; matches
// whose path is too shallow to decompose are logged and skipped.
func (c *Catalog) Scan(pattern string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid screenshot pattern %q: %v", pattern, err)
	}

	images := make(map[string]map[string]types.ImageRecord)
	for _, path := range matches {
		filename, appID, err := SplitScreenshotPath(path)
		if err != nil {
			tool.DefaultLogger.Warnf("Skipping screenshot match: %v", err)
			continue
		}
		if _, ok := images[appID]; !ok {
			images[appID] = make(map[string]types.ImageRecord)
		}
		images[appID][filename] = types.ImageRecord{
			FilePath: path,
			FileName: filename,
			AppID:    appID,
		}
	}

	apps := make(map[string]types.ApplicationRecord, len(images))
	for appID := range images {
		title, _ := c.resolver.TitleFor(appID)
		apps[appID] = types.ApplicationRecord{AppID: appID, Title: title}
	}

	c.mu.Lock()
	c.images = images
	c.apps = apps
	c.mu.Unlock()
	return nil
}

// Lookup returns the record for an (appID, filename) pair.
func (c *Catalog) Lookup(appID, filename string) (types.ImageRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	byName, ok := c.images[appID]
	if !ok {
		return types.ImageRecord{}, false
	}
	record, ok := byName[filename]
	return record, ok
}

// ImagesFor returns the records passing filter, sorted by filename.
func (c *Catalog) ImagesFor(filter types.AppFilter) []types.ImageRecord {
	c.mu.RLock()
	records := make([]types.ImageRecord, 0)
	for appID, byName := range c.images {
		if !filter.Matches(appID) {
			continue
		}
		for _, record := range byName {
			records = append(records, record)
		}
	}
	c.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i].FileName) < strings.ToLower(records[j].FileName)
	})
	return records
}

// Apps returns every application record, sorted by display label.
func (c *Catalog) Apps() []types.ApplicationRecord {
	c.mu.RLock()
	apps := make([]types.ApplicationRecord, 0, len(c.apps))
	for _, app := range c.apps {
		apps = append(apps, app)
	}
	c.mu.RUnlock()

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Label() < apps[j].Label()
	})
	return apps
}

// App returns the application record for one id.
func (c *Catalog) App(appID string) (types.ApplicationRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	app, ok := c.apps[appID]
	return app, ok
}

// Counts returns the number of catalogued images and applications.
func (c *Catalog) Counts() (images, apps int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, byName := range c.images {
		images += len(byName)
	}
	return images, len(c.apps)
}
