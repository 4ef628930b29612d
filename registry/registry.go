package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/carotene/sharess-go/tool"
	"github.com/carotene/sharess-go/types"
)

// CacheFileName is the persisted copy of the remote application list.
const CacheFileName = "applist.json"

// Cache resolves application ids to display titles, backed by a locally
// persisted copy of the remote application list. The raw remote response is
// stored verbatim; presence of the file alone makes the cache fresh, its age
// is never checked.
type Cache struct {
	path   string
	url    string
	client *http.Client

	mu     sync.RWMutex
	titles map[string]string
}

// New creates a cache rooted in cacheDir, fetching from url when the file is
// absent.
func New(cacheDir, url string, client *http.Client) *Cache {
	return &Cache{
		path:   filepath.Join(cacheDir, CacheFileName),
		url:    url,
		client: client,
		titles: make(map[string]string),
	}
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

// EnsureFresh fetches and persists the remote application list when no local
// copy exists yet. Fetch failure is soft: a warning is logged and the cache
// file is simply left absent, without retry.
func (c *Cache) EnsureFresh(ctx context.Context) {
	if _, err := os.Stat(c.path); err == nil {
		tool.DefaultLogger.Debugf("Registry cache present at %s, skipping fetch", c.path)
		return
	}
	body, err := c.fetch(ctx)
	if err != nil {
		tool.DefaultLogger.Warnf("Registry fetch failed, continuing without cache: %v", err)
		return
	}
	if err := os.WriteFile(c.path, body, 0o644); err != nil {
		tool.DefaultLogger.Warnf("Failed to persist registry cache: %v", err)
		return
	}
	tool.DefaultLogger.Infof("Fetched application registry (%d bytes) to %s", len(body), c.path)
}

func (c *Cache) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %v", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Load parses the persisted application list into the id to title mapping. A
// missing or malformed cache file is an error the caller treats as fatal at
// startup.
func (c *Cache) Load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read registry cache: %v", err)
	}
	var payload types.AppListPayload
	if err := sonic.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse registry cache %s: %v", c.path, err)
	}
	titles := make(map[string]string, len(payload.AppList.Apps))
	for _, app := range payload.AppList.Apps {
		titles[strconv.FormatInt(app.AppID, 10)] = app.Name
	}

	c.mu.Lock()
	c.titles = titles
	c.mu.Unlock()
	return nil
}

// TitleFor returns the display title for an application id. Unknown ids are
// allowed and simply yield a title-less application record downstream.
func (c *Cache) TitleFor(appID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	title, ok := c.titles[appID]
	return title, ok
}

// Len returns the number of resolved titles.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.titles)
}
