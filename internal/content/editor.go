package content

import (
	"context"
	"fmt"
	"log"

	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/store"
)

// Authorizer is the slice of the admin session gate the save pipeline needs:
// a nil error means writes are allowed right now.
type Authorizer interface {
	Require() error
}

// Editor holds a draft of the SiteConfig, separate from the published copy,
// so edits are invisible to the public site until Save succeeds.
type Editor struct {
	authz   Authorizer
	store   *store.Client
	cache   *cache.Cache
	manager *Manager
	draft   *models.SiteConfig
}

// NewEditor seeds the draft from the currently published config.
func NewEditor(authz Authorizer, s *store.Client, c *cache.Cache, m *Manager) *Editor {
	return &Editor{
		authz:   authz,
		store:   s,
		cache:   c,
		manager: m,
		draft:   m.Config(),
	}
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() *models.SiteConfig {
	return e.draft.Clone()
}

// UpdateField sets one scalar draft field by its camelCase path. It is a
// pure in-memory mutation; nothing is persisted until Save.
func (e *Editor) UpdateField(path, value string) error {
	switch path {
	case "siteName":
		e.draft.SiteName = value
	case "tagline":
		e.draft.Tagline = value
	case "heroHeadline":
		e.draft.HeroHeadline = value
	case "heroSubtext":
		e.draft.HeroSubtext = value
	case "contactEmail":
		e.draft.ContactEmail = value
	case "contactPhone":
		e.draft.ContactPhone = value
	case "location":
		e.draft.Location = value
	case "instagramUrl":
		e.draft.InstagramURL = value
	case "linkedInUrl":
		e.draft.LinkedInURL = value
	case "couponPrefix":
		e.draft.CouponPrefix = value
	case "theme":
		if !models.Theme(value).Valid() {
			return fmt.Errorf("invalid theme %q", value)
		}
		e.draft.Theme = models.Theme(value)
	case "seo.metaTitle":
		e.draft.SEO.MetaTitle = value
	case "seo.metaDescription":
		e.draft.SEO.MetaDescription = value
	case "seo.keywords":
		e.draft.SEO.Keywords = value
	default:
		return fmt.Errorf("unknown field %q", path)
	}
	return nil
}

// SetSkills replaces the draft skills, clamping levels into range.
func (e *Editor) SetSkills(skills []models.Skill) {
	clamped := make([]models.Skill, len(skills))
	for i, s := range skills {
		s.Clamp()
		clamped[i] = s
	}
	e.draft.Skills = clamped
}

func (e *Editor) SetFAQs(faqs []models.FAQItem) {
	e.draft.FAQs = append([]models.FAQItem(nil), faqs...)
}

func (e *Editor) SetPlans(plans []models.PricingPlan) {
	e.draft.Plans = append([]models.PricingPlan(nil), plans...)
}

// Save pushes the full draft to the singleton settings record. It requires
// an authenticated gate, and on failure leaves the draft untouched and
// returns the error as-is; the draft is also snapshotted to the local cache
// so the edit survives a backend outage. On success the draft becomes the
// published config.
func (e *Editor) Save(ctx context.Context) error {
	if err := e.authz.Require(); err != nil {
		return err
	}

	payload := settingsPayload(e.draft)
	if err := e.store.Table("settings").Eq("id", 1).Update(ctx, payload); err != nil {
		if e.cache != nil {
			if cErr := e.cache.SaveConfig(ctx, e.draft); cErr != nil {
				log.Printf("editor: cache fallback: %v", cErr)
			}
		}
		return err
	}

	e.manager.Publish(e.draft)
	return nil
}
