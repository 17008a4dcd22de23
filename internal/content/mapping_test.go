package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoawt/Linostudiong/internal/defaults"
	"github.com/linoawt/Linostudiong/internal/models"
)

func TestMergeSettingsPerField(t *testing.T) {
	cfg := defaults.Config()
	wantTagline := cfg.Tagline
	wantTheme := cfg.Theme

	// One column present, one null, the rest absent: only the present
	// column may move.
	raw := json.RawMessage(`{"site_name":"Acme Studio","theme":null}`)
	require.NoError(t, mergeSettings(cfg, raw))

	assert.Equal(t, "Acme Studio", cfg.SiteName)
	assert.Equal(t, wantTagline, cfg.Tagline, "absent column keeps the default")
	assert.Equal(t, wantTheme, cfg.Theme, "null column keeps the default")
}

func TestMergeSettingsTheme(t *testing.T) {
	cfg := defaults.Config()
	require.NoError(t, mergeSettings(cfg, json.RawMessage(`{"theme":"dark"}`)))
	assert.Equal(t, models.ThemeDark, cfg.Theme)

	// An unknown theme value is ignored, not an error.
	require.NoError(t, mergeSettings(cfg, json.RawMessage(`{"theme":"sepia"}`)))
	assert.Equal(t, models.ThemeDark, cfg.Theme)
}

func TestMergeSettingsWrongTypeIgnored(t *testing.T) {
	cfg := defaults.Config()
	want := cfg.SiteName
	require.NoError(t, mergeSettings(cfg, json.RawMessage(`{"site_name":42}`)))
	assert.Equal(t, want, cfg.SiteName)
}

func TestMergeSettingsNotAnObject(t *testing.T) {
	cfg := defaults.Config()
	assert.Error(t, mergeSettings(cfg, json.RawMessage(`"just a string"`)))
}

func TestMergeSettingsCollections(t *testing.T) {
	cfg := defaults.Config()
	defaultSkills := len(cfg.Skills)

	// Empty arrays keep the bundled collections.
	require.NoError(t, mergeSettings(cfg, json.RawMessage(`{"skills":[],"faqs":[],"plans":[]}`)))
	assert.Len(t, cfg.Skills, defaultSkills)

	raw := json.RawMessage(`{
		"skills":[{"name":"Figma","level":250,"category":"Design"}],
		"faqs":[{"question":"Q?","answer":"A."}],
		"plans":[{"name":"Solo","price":"$99","features":["One page"],"highlighted":true}]
	}`)
	require.NoError(t, mergeSettings(cfg, raw))

	require.Len(t, cfg.Skills, 1)
	assert.Equal(t, "Figma", cfg.Skills[0].Name)
	assert.Equal(t, 100, cfg.Skills[0].Level, "levels clamp into range")

	require.Len(t, cfg.FAQs, 1)
	assert.Equal(t, "Q?", cfg.FAQs[0].Question)

	require.Len(t, cfg.Plans, 1)
	assert.Equal(t, "Solo", cfg.Plans[0].Name)
	assert.True(t, cfg.Plans[0].Highlighted)
}

func TestSettingsPayloadRoundtrip(t *testing.T) {
	cfg := defaults.Config()
	cfg.SiteName = "Roundtrip Studio"
	cfg.SEO.MetaTitle = "Roundtrip"
	cfg.Theme = models.ThemeDark

	payload := settingsPayload(cfg)
	assert.Equal(t, "Roundtrip Studio", payload["site_name"])
	assert.Equal(t, "Roundtrip", payload["meta_title"])
	assert.Equal(t, "dark", payload["theme"])

	// A merge of the emitted payload reproduces the config it came from.
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	got := defaults.Config()
	require.NoError(t, mergeSettings(got, data))
	assert.Equal(t, cfg.SiteName, got.SiteName)
	assert.Equal(t, cfg.Theme, got.Theme)
	assert.Equal(t, cfg.Skills, got.Skills)
	assert.Equal(t, cfg.FAQs, got.FAQs)
	assert.Equal(t, cfg.Plans, got.Plans)
}

func TestProjectRowNaming(t *testing.T) {
	row := projectToRow(models.Project{Title: "Brand X", Category: models.CategoryGraphicDesign, ProjectURL: "https://x.test"})
	data, err := json.Marshal(row)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Contains(t, wire, "project_url")
	assert.NotContains(t, wire, "projectUrl")
}

func TestProjectsFromRawBadRow(t *testing.T) {
	_, err := projectsFromRaw([]json.RawMessage{json.RawMessage(`[1,2]`)})
	assert.Error(t, err)
}
