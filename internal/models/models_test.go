package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnums(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())

	assert.True(t, CategoryGraphicDesign.Valid())
	assert.True(t, CategoryWebDevelopment.Valid())
	assert.False(t, ProjectCategory("Sculpture").Valid())

	assert.True(t, LeadHireMe.Valid())
	assert.True(t, LeadContactForm.Valid())
	assert.False(t, LeadType("SPAM").Valid())
}

func TestSkillClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		s := Skill{Level: tt.in}
		s.Clamp()
		assert.Equal(t, tt.want, s.Level)
	}
}

func TestSiteConfigCloneIsDeep(t *testing.T) {
	orig := &SiteConfig{
		SiteName: "Original",
		Projects: []Project{{ID: "1", Title: "P"}},
		Services: []Service{{ID: "1", Items: []string{"a"}}},
		Skills:   []Skill{{Name: "S", Level: 50}},
		FAQs:     []FAQItem{{Question: "Q"}},
		Plans:    []PricingPlan{{Name: "Basic", Features: []string{"f"}}},
	}

	clone := orig.Clone()
	clone.SiteName = "Changed"
	clone.Projects[0].Title = "Changed"
	clone.Services[0].Items[0] = "changed"
	clone.Plans[0].Features[0] = "changed"

	assert.Equal(t, "Original", orig.SiteName)
	assert.Equal(t, "P", orig.Projects[0].Title)
	assert.Equal(t, "a", orig.Services[0].Items[0])
	assert.Equal(t, "f", orig.Plans[0].Features[0])
}
