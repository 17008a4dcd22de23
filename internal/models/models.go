package models

import "time"

// Theme is the site-wide color scheme toggle.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ProjectCategory is a closed enum; anything else is rejected at intake.
type ProjectCategory string

const (
	CategoryGraphicDesign  ProjectCategory = "Graphic Design"
	CategoryWebDevelopment ProjectCategory = "Web Development"
)

func (c ProjectCategory) Valid() bool {
	return c == CategoryGraphicDesign || c == CategoryWebDevelopment
}

type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    ProjectCategory `json:"category"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	ProjectURL  string          `json:"projectUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

type SkillCategory string

const (
	SkillDesign      SkillCategory = "Design"
	SkillDevelopment SkillCategory = "Development"
)

type Skill struct {
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

// Clamp forces the level into the renderable 0-100 range.
func (s *Skill) Clamp() {
	if s.Level < 0 {
		s.Level = 0
	}
	if s.Level > 100 {
		s.Level = 100
	}
}

// Testimonial is static content, not admin-editable.
type Testimonial struct {
	ID     string `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

type PricingPlan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

// SiteConfig is the singleton content record for a deployment. Exactly one
// logical instance exists; it is read on every page load and mutated only
// through the admin save pipeline.
type SiteConfig struct {
	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline"`
	HeroHeadline string `json:"heroHeadline"`
	HeroSubtext  string `json:"heroSubtext"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Location     string `json:"location"`
	InstagramURL string `json:"instagramUrl"`
	LinkedInURL  string `json:"linkedInUrl"`
	Theme        Theme  `json:"theme"`
	CouponPrefix string `json:"couponPrefix"`
	SEO          SEO    `json:"seo"`

	Projects     []Project     `json:"projects"`
	Services     []Service     `json:"services"`
	Skills       []Skill       `json:"skills"`
	FAQs         []FAQItem     `json:"faqs"`
	Plans        []PricingPlan `json:"plans"`
	Testimonials []Testimonial `json:"testimonials"`
}

// Clone returns a deep copy so drafts never alias the published config.
func (c *SiteConfig) Clone() *SiteConfig {
	out := *c
	out.Projects = append([]Project(nil), c.Projects...)
	out.Services = make([]Service, len(c.Services))
	for i, s := range c.Services {
		s.Items = append([]string(nil), s.Items...)
		out.Services[i] = s
	}
	out.Skills = append([]Skill(nil), c.Skills...)
	out.FAQs = append([]FAQItem(nil), c.FAQs...)
	out.Plans = make([]PricingPlan, len(c.Plans))
	for i, p := range c.Plans {
		p.Features = append([]string(nil), p.Features...)
		out.Plans[i] = p
	}
	out.Testimonials = append([]Testimonial(nil), c.Testimonials...)
	return &out
}

type LeadType string

const (
	LeadHireMe      LeadType = "HIRE_ME"
	LeadContactForm LeadType = "CONTACT_FORM"
)

func (t LeadType) Valid() bool {
	return t == LeadHireMe || t == LeadContactForm
}

// Lead is immutable once created by the intake pipeline.
type Lead struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Type          LeadType  `json:"type"`
	Budget        string    `json:"budget,omitempty"`
	Message       string    `json:"message"`
	ReferenceCode string    `json:"referenceCode"`
	Summary       string    `json:"summary,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
