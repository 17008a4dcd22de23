package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoawt/Linostudiong/internal/defaults"
	"github.com/linoawt/Linostudiong/internal/models"
)

func TestManagerConfigIsACopy(t *testing.T) {
	m := NewManager(defaults.Config())

	got := m.Config()
	got.SiteName = "Mutated"
	got.Projects[0].Title = "Mutated"

	fresh := m.Config()
	assert.NotEqual(t, "Mutated", fresh.SiteName)
	assert.NotEqual(t, "Mutated", fresh.Projects[0].Title)
}

func TestManagerPublishDetaches(t *testing.T) {
	m := NewManager(defaults.Config())

	next := defaults.Config()
	next.SiteName = "Published"
	m.Publish(next)

	// Later writes through the caller's pointer must not leak in.
	next.SiteName = "Tampered"
	assert.Equal(t, "Published", m.Config().SiteName)
}

func TestManagerMutate(t *testing.T) {
	m := NewManager(defaults.Config())
	m.Mutate(func(cfg *models.SiteConfig) {
		cfg.Projects = append([]models.Project{{ID: "new", Title: "Newest"}}, cfg.Projects...)
	})

	got := m.Config()
	require.NotEmpty(t, got.Projects)
	assert.Equal(t, "Newest", got.Projects[0].Title)
}
