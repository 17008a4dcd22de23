package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoawt/Linostudiong/internal/auth"
	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/defaults"
	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/store"
)

type allowAll struct{}

func (allowAll) Require() error { return nil }

type denyAll struct{}

func (denyAll) Require() error { return auth.ErrNotAuthenticated }

// settingsRecorder captures every PATCH body sent to the settings table.
type settingsRecorder struct {
	mu     sync.Mutex
	bodies []map[string]any
	fail   bool
}

func (rec *settingsRecorder) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/settings", r.URL.Path)
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "eq.1", r.URL.Query().Get("id"))

		rec.mu.Lock()
		defer rec.mu.Unlock()
		if rec.fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		rec.bodies = append(rec.bodies, body)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testEditorCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "editor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestEditorDraftIsolation(t *testing.T) {
	m := NewManager(defaults.Config())
	e := NewEditor(allowAll{}, nil, nil, m)

	require.NoError(t, e.UpdateField("siteName", "Draft Studio"))
	assert.Equal(t, "Draft Studio", e.Draft().SiteName)
	assert.NotEqual(t, "Draft Studio", m.Config().SiteName, "unsaved edits stay invisible")
}

func TestEditorUpdateField(t *testing.T) {
	m := NewManager(defaults.Config())
	e := NewEditor(allowAll{}, nil, nil, m)

	require.NoError(t, e.UpdateField("theme", "dark"))
	require.NoError(t, e.UpdateField("seo.metaTitle", "New Title"))
	require.NoError(t, e.UpdateField("couponPrefix", "ACME-"))

	d := e.Draft()
	assert.Equal(t, models.ThemeDark, d.Theme)
	assert.Equal(t, "New Title", d.SEO.MetaTitle)
	assert.Equal(t, "ACME-", d.CouponPrefix)

	assert.Error(t, e.UpdateField("theme", "sepia"))
	assert.Error(t, e.UpdateField("nope", "x"))
}

func TestEditorSetSkillsClamps(t *testing.T) {
	m := NewManager(defaults.Config())
	e := NewEditor(allowAll{}, nil, nil, m)

	e.SetSkills([]models.Skill{{Name: "Figma", Level: 999, Category: models.SkillDesign}})
	d := e.Draft()
	require.Len(t, d.Skills, 1)
	assert.Equal(t, 100, d.Skills[0].Level)
}

func TestSaveRequiresAuthentication(t *testing.T) {
	rec := &settingsRecorder{}
	client := store.New(rec.server(t).URL, "anon-key")
	m := NewManager(defaults.Config())

	e := NewEditor(denyAll{}, client, nil, m)
	require.NoError(t, e.UpdateField("siteName", "Nope"))

	err := e.Save(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	assert.Empty(t, rec.bodies, "no write may reach the backend")
}

func TestSavePublishesDraft(t *testing.T) {
	rec := &settingsRecorder{}
	client := store.New(rec.server(t).URL, "anon-key")
	m := NewManager(defaults.Config())

	e := NewEditor(allowAll{}, client, testEditorCache(t), m)
	require.NoError(t, e.UpdateField("siteName", "Saved Studio"))
	require.NoError(t, e.Save(context.Background()))

	assert.Equal(t, "Saved Studio", m.Config().SiteName)

	require.Len(t, rec.bodies, 1)
	assert.Equal(t, "Saved Studio", rec.bodies[0]["site_name"])
	// The batched save always carries the full record, edited or not.
	assert.Contains(t, rec.bodies[0], "tagline")
	assert.Contains(t, rec.bodies[0], "skills")
}

func TestSaveIsIdempotent(t *testing.T) {
	rec := &settingsRecorder{}
	client := store.New(rec.server(t).URL, "anon-key")
	m := NewManager(defaults.Config())

	e := NewEditor(allowAll{}, client, nil, m)
	require.NoError(t, e.UpdateField("siteName", "Twice Studio"))
	require.NoError(t, e.Save(context.Background()))
	require.NoError(t, e.Save(context.Background()))

	require.Len(t, rec.bodies, 2)
	assert.Equal(t, rec.bodies[0], rec.bodies[1], "a repeated save sends an identical record")
}

func TestSaveFailureKeepsDraftAndSnapshotsCache(t *testing.T) {
	rec := &settingsRecorder{fail: true}
	client := store.New(rec.server(t).URL, "anon-key")
	m := NewManager(defaults.Config())
	c := testEditorCache(t)

	e := NewEditor(allowAll{}, client, c, m)
	require.NoError(t, e.UpdateField("siteName", "Unsaved Studio"))

	err := e.Save(context.Background())
	require.Error(t, err)
	var se *store.Error
	assert.ErrorAs(t, err, &se, "the backend error surfaces as-is")

	assert.NotEqual(t, "Unsaved Studio", m.Config().SiteName, "failed save publishes nothing")
	assert.Equal(t, "Unsaved Studio", e.Draft().SiteName, "the draft survives for a retry")

	snap, err := c.LoadConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unsaved Studio", snap.SiteName, "the edit is snapshotted locally")
}
