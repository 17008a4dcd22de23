package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/store"
)

// Catalog performs the immediately-persisted project and service operations.
// Unlike the batched settings save, an add or delete hits the backend right
// away and only then updates the published config.
type Catalog struct {
	authz   Authorizer
	store   *store.Client
	manager *Manager
}

func NewCatalog(authz Authorizer, s *store.Client, m *Manager) *Catalog {
	return &Catalog{authz: authz, store: s, manager: m}
}

func (c *Catalog) AddProject(ctx context.Context, p models.Project) (models.Project, error) {
	if err := c.authz.Require(); err != nil {
		return models.Project{}, err
	}
	if p.Title == "" {
		return models.Project{}, fmt.Errorf("project title required")
	}
	if !p.Category.Valid() {
		return models.Project{}, fmt.Errorf("invalid project category %q", p.Category)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()

	if err := c.store.Table("projects").Insert(ctx, projectToRow(p)); err != nil {
		return models.Project{}, fmt.Errorf("insert project: %w", err)
	}

	c.manager.Mutate(func(cfg *models.SiteConfig) {
		cfg.Projects = append([]models.Project{p}, cfg.Projects...)
	})
	return p, nil
}

func (c *Catalog) DeleteProject(ctx context.Context, id string) error {
	if err := c.authz.Require(); err != nil {
		return err
	}
	if err := c.store.Table("projects").Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	c.manager.Mutate(func(cfg *models.SiteConfig) {
		kept := cfg.Projects[:0]
		for _, p := range cfg.Projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		cfg.Projects = kept
	})
	return nil
}

func (c *Catalog) AddService(ctx context.Context, s models.Service) (models.Service, error) {
	if err := c.authz.Require(); err != nil {
		return models.Service{}, err
	}
	if s.Title == "" {
		return models.Service{}, fmt.Errorf("service title required")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	if err := c.store.Table("services").Insert(ctx, serviceToRow(s)); err != nil {
		return models.Service{}, fmt.Errorf("insert service: %w", err)
	}

	c.manager.Mutate(func(cfg *models.SiteConfig) {
		cfg.Services = append(cfg.Services, s)
	})
	return s, nil
}

func (c *Catalog) DeleteService(ctx context.Context, id string) error {
	if err := c.authz.Require(); err != nil {
		return err
	}
	if err := c.store.Table("services").Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	c.manager.Mutate(func(cfg *models.SiteConfig) {
		kept := cfg.Services[:0]
		for _, s := range cfg.Services {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		cfg.Services = kept
	})
	return nil
}
