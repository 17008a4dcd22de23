package content

import (
	"sync"

	"github.com/linoawt/Linostudiong/internal/models"
)

// Manager holds the published SiteConfig: one writer (the save pipeline and
// the immediate project/service operations), many readers. Nothing else in
// the process keeps its own long-lived copy.
type Manager struct {
	mu  sync.RWMutex
	cfg *models.SiteConfig
}

func NewManager(cfg *models.SiteConfig) *Manager {
	return &Manager{cfg: cfg.Clone()}
}

// Config returns a copy of the published config. Callers may mutate it
// without affecting the published state.
func (m *Manager) Config() *models.SiteConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.Clone()
}

// Publish replaces the published config.
func (m *Manager) Publish(cfg *models.SiteConfig) {
	clone := cfg.Clone()
	m.mu.Lock()
	m.cfg = clone
	m.mu.Unlock()
}

// Mutate applies fn to the published config under the write lock. Used by
// the immediately-persisted project/service operations after their remote
// write succeeds.
func (m *Manager) Mutate(fn func(cfg *models.SiteConfig)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.cfg)
}
