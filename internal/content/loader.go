// Package content owns the site configuration: loading it from the remote
// backend with per-field defaults, holding the published copy, and pushing
// admin edits back out. It is the only place where the wire's snake_case
// naming and the internal camelCase shape meet.
package content

import (
	"context"
	"errors"
	"log"

	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/defaults"
	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/store"
)

// Loader resolves the effective SiteConfig at startup. Load never fails:
// remote values merge over the bundled defaults field by field, and when the
// backend is unreachable the last cached snapshot (or the defaults) stands in.
type Loader struct {
	store *store.Client
	cache *cache.Cache
}

func NewLoader(s *store.Client, c *cache.Cache) *Loader {
	return &Loader{store: s, cache: c}
}

func (l *Loader) Load(ctx context.Context) *models.SiteConfig {
	cfg := defaults.Config()

	raw, err := l.store.Table("settings").Eq("id", 1).Single(ctx)
	if err == nil {
		err = mergeSettings(cfg, raw)
	}
	if err != nil {
		log.Printf("loader: settings fetch: %v", err)
		return l.fallback(ctx, cfg)
	}

	if raws, err := l.store.Table("projects").Order("created_at", true).Select(ctx); err != nil {
		log.Printf("loader: projects fetch: %v", err)
	} else if projects, err := projectsFromRaw(raws); err != nil {
		log.Printf("loader: %v", err)
	} else if len(projects) > 0 {
		cfg.Projects = projects
	}

	if raws, err := l.store.Table("services").Select(ctx); err != nil {
		log.Printf("loader: services fetch: %v", err)
	} else if services, err := servicesFromRaw(raws); err != nil {
		log.Printf("loader: %v", err)
	} else if len(services) > 0 {
		cfg.Services = services
	}

	// Refresh the fallback snapshot so the next offline start serves the
	// content we just resolved.
	if l.cache != nil {
		if err := l.cache.SaveConfig(ctx, cfg); err != nil {
			log.Printf("loader: cache snapshot: %v", err)
		}
	}

	return cfg
}

func (l *Loader) fallback(ctx context.Context, bundled *models.SiteConfig) *models.SiteConfig {
	if l.cache == nil {
		return bundled
	}
	snap, err := l.cache.LoadConfig(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("loader: cache read: %v", err)
		}
		return bundled
	}
	log.Printf("loader: serving cached snapshot")
	return snap
}
