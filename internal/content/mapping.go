package content

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/linoawt/Linostudiong/internal/models"
)

// scalarField binds one snake_case settings column to one SiteConfig field.
// Every scalar on the settings record is a string, so a single table drives
// the per-field fallback in both directions: a column that is absent or
// null keeps whatever the destination already holds (the bundled default).
type scalarField struct {
	column string
	field  func(c *models.SiteConfig) *string
}

var scalarFields = []scalarField{
	{"site_name", func(c *models.SiteConfig) *string { return &c.SiteName }},
	{"tagline", func(c *models.SiteConfig) *string { return &c.Tagline }},
	{"hero_headline", func(c *models.SiteConfig) *string { return &c.HeroHeadline }},
	{"hero_subtext", func(c *models.SiteConfig) *string { return &c.HeroSubtext }},
	{"contact_email", func(c *models.SiteConfig) *string { return &c.ContactEmail }},
	{"contact_phone", func(c *models.SiteConfig) *string { return &c.ContactPhone }},
	{"location", func(c *models.SiteConfig) *string { return &c.Location }},
	{"instagram_url", func(c *models.SiteConfig) *string { return &c.InstagramURL }},
	{"linkedin_url", func(c *models.SiteConfig) *string { return &c.LinkedInURL }},
	{"coupon_prefix", func(c *models.SiteConfig) *string { return &c.CouponPrefix }},
	{"meta_title", func(c *models.SiteConfig) *string { return &c.SEO.MetaTitle }},
	{"meta_description", func(c *models.SiteConfig) *string { return &c.SEO.MetaDescription }},
	{"keywords", func(c *models.SiteConfig) *string { return &c.SEO.Keywords }},
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// mergeSettings applies a fetched settings row onto dst field by field.
// Only a row that is not a JSON object at all counts as an error.
func mergeSettings(dst *models.SiteConfig, raw json.RawMessage) error {
	var row map[string]json.RawMessage
	if err := json.Unmarshal(raw, &row); err != nil {
		return fmt.Errorf("decode settings row: %w", err)
	}

	for _, f := range scalarFields {
		v, ok := row[f.column]
		if !ok || isNull(v) {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		*f.field(dst) = s
	}

	if v, ok := row["theme"]; ok && !isNull(v) {
		var s string
		if err := json.Unmarshal(v, &s); err == nil && models.Theme(s).Valid() {
			dst.Theme = models.Theme(s)
		}
	}

	// Embedded collections replace the defaults wholesale, but only when
	// present and non-empty.
	if v, ok := row["skills"]; ok && !isNull(v) {
		var rows []skillRow
		if err := json.Unmarshal(v, &rows); err == nil && len(rows) > 0 {
			dst.Skills = skillsFromRows(rows)
		}
	}
	if v, ok := row["faqs"]; ok && !isNull(v) {
		var rows []faqRow
		if err := json.Unmarshal(v, &rows); err == nil && len(rows) > 0 {
			dst.FAQs = faqsFromRows(rows)
		}
	}
	if v, ok := row["plans"]; ok && !isNull(v) {
		var rows []planRow
		if err := json.Unmarshal(v, &rows); err == nil && len(rows) > 0 {
			dst.Plans = plansFromRows(rows)
		}
	}

	return nil
}

// settingsPayload translates the full config back to the wire naming for the
// singleton settings update.
func settingsPayload(cfg *models.SiteConfig) map[string]any {
	payload := map[string]any{
		"theme":  string(cfg.Theme),
		"skills": skillsToRows(cfg.Skills),
		"faqs":   faqsToRows(cfg.FAQs),
		"plans":  plansToRows(cfg.Plans),
	}
	for _, f := range scalarFields {
		payload[f.column] = *f.field(cfg)
	}
	return payload
}

// --- collection wire shapes ---

type projectRow struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Thumbnail   string    `json:"thumbnail"`
	Description string    `json:"description"`
	ProjectURL  string    `json:"project_url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

func projectToRow(p models.Project) projectRow {
	return projectRow{
		ID:          p.ID,
		Title:       p.Title,
		Category:    string(p.Category),
		Thumbnail:   p.Thumbnail,
		Description: p.Description,
		ProjectURL:  p.ProjectURL,
		CreatedAt:   p.CreatedAt,
	}
}

func projectsFromRaw(raws []json.RawMessage) ([]models.Project, error) {
	projects := make([]models.Project, 0, len(raws))
	for _, raw := range raws {
		var row projectRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("decode project row: %w", err)
		}
		projects = append(projects, models.Project{
			ID:          row.ID,
			Title:       row.Title,
			Category:    models.ProjectCategory(row.Category),
			Thumbnail:   row.Thumbnail,
			Description: row.Description,
			ProjectURL:  row.ProjectURL,
			CreatedAt:   row.CreatedAt,
		})
	}
	return projects, nil
}

type serviceRow struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

func serviceToRow(s models.Service) serviceRow {
	return serviceRow{ID: s.ID, Title: s.Title, Icon: s.Icon, Description: s.Description, Items: s.Items}
}

func servicesFromRaw(raws []json.RawMessage) ([]models.Service, error) {
	services := make([]models.Service, 0, len(raws))
	for _, raw := range raws {
		var row serviceRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("decode service row: %w", err)
		}
		services = append(services, models.Service{
			ID:          row.ID,
			Title:       row.Title,
			Icon:        row.Icon,
			Description: row.Description,
			Items:       row.Items,
		})
	}
	return services, nil
}

type skillRow struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

func skillsFromRows(rows []skillRow) []models.Skill {
	skills := make([]models.Skill, 0, len(rows))
	for _, row := range rows {
		s := models.Skill{Name: row.Name, Level: row.Level, Category: models.SkillCategory(row.Category)}
		s.Clamp()
		skills = append(skills, s)
	}
	return skills
}

func skillsToRows(skills []models.Skill) []skillRow {
	rows := make([]skillRow, 0, len(skills))
	for _, s := range skills {
		rows = append(rows, skillRow{Name: s.Name, Level: s.Level, Category: string(s.Category)})
	}
	return rows
}

type faqRow struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func faqsFromRows(rows []faqRow) []models.FAQItem {
	faqs := make([]models.FAQItem, 0, len(rows))
	for _, row := range rows {
		faqs = append(faqs, models.FAQItem{Question: row.Question, Answer: row.Answer})
	}
	return faqs
}

func faqsToRows(faqs []models.FAQItem) []faqRow {
	rows := make([]faqRow, 0, len(faqs))
	for _, f := range faqs {
		rows = append(rows, faqRow{Question: f.Question, Answer: f.Answer})
	}
	return rows
}

type planRow struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

func plansFromRows(rows []planRow) []models.PricingPlan {
	plans := make([]models.PricingPlan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, models.PricingPlan{Name: row.Name, Price: row.Price, Features: row.Features, Highlighted: row.Highlighted})
	}
	return plans
}

func plansToRows(plans []models.PricingPlan) []planRow {
	rows := make([]planRow, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, planRow{Name: p.Name, Price: p.Price, Features: p.Features, Highlighted: p.Highlighted})
	}
	return rows
}
