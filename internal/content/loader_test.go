package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/defaults"
	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/store"
)

// contentBackend serves the three content tables with canned rows.
type contentBackend struct {
	settings json.RawMessage
	projects string
	services string
}

func (b *contentBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/settings":
			if b.settings == nil {
				w.Write([]byte(`[]`))
				return
			}
			w.Write([]byte(`[` + string(b.settings) + `]`))
		case "/rest/v1/projects":
			w.Write([]byte(b.projects))
		case "/rest/v1/services":
			w.Write([]byte(b.services))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testContentCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "content.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLoadMergesRemoteOverDefaults(t *testing.T) {
	backend := &contentBackend{
		settings: json.RawMessage(`{"site_name":"Remote Studio","theme":"dark"}`),
		projects: `[{"id":"p1","title":"Remote Project","category":"Web Development","thumbnail":"","description":"d"}]`,
		services: `[]`,
	}
	client := store.New(backend.server(t).URL, "anon-key")
	c := testContentCache(t)

	cfg := NewLoader(client, c).Load(context.Background())

	assert.Equal(t, "Remote Studio", cfg.SiteName)
	assert.Equal(t, models.ThemeDark, cfg.Theme)
	assert.Equal(t, defaults.Config().Tagline, cfg.Tagline, "untouched fields keep defaults")

	require.Len(t, cfg.Projects, 1)
	assert.Equal(t, "Remote Project", cfg.Projects[0].Title)
	assert.Len(t, cfg.Services, len(defaults.Config().Services), "empty table keeps bundled services")

	// The resolved config became the offline snapshot.
	snap, err := c.LoadConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Remote Studio", snap.SiteName)
}

func TestLoadMissingSettingsRowFallsBack(t *testing.T) {
	backend := &contentBackend{projects: `[]`, services: `[]`}
	client := store.New(backend.server(t).URL, "anon-key")

	cfg := NewLoader(client, testContentCache(t)).Load(context.Background())
	assert.Equal(t, defaults.Config().SiteName, cfg.SiteName)
}

func TestLoadOfflineServesCachedSnapshot(t *testing.T) {
	c := testContentCache(t)
	snap := defaults.Config()
	snap.SiteName = "Cached Studio"
	require.NoError(t, c.SaveConfig(context.Background(), snap))

	client := store.New("http://127.0.0.1:1", "anon-key")
	cfg := NewLoader(client, c).Load(context.Background())
	assert.Equal(t, "Cached Studio", cfg.SiteName)
}

func TestLoadOfflineColdCacheServesDefaults(t *testing.T) {
	client := store.New("http://127.0.0.1:1", "anon-key")
	cfg := NewLoader(client, testContentCache(t)).Load(context.Background())
	assert.Equal(t, defaults.Config().SiteName, cfg.SiteName)
	assert.NotEmpty(t, cfg.Projects, "bundled portfolio still renders")
}

func TestLoadNeverReturnsNil(t *testing.T) {
	client := store.New("http://127.0.0.1:1", "anon-key")
	cfg := NewLoader(client, nil).Load(context.Background())
	require.NotNil(t, cfg)
}
