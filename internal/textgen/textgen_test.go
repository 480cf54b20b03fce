package textgen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile() ResumeProfile {
	return ResumeProfile{
		Name:          "Dev One",
		Summary:       "I write software.",
		Skills:        []string{"Go", "TypeScript", "React", "PostgreSQL", "Redis"},
		YearsOfExp:    6,
		RecentTitle:   "Backend Engineer",
		RecentCompany: "Acme",
	}
}

func TestFallback_UsesServiceWhenAvailable(t *testing.T) {
	gen := NewFallback(&FakeGenerator{Text: "polished summary"}, nil)

	result := gen.OptimizeSummary(context.Background(), profile())

	assert.Equal(t, SourceService, result.Source)
	assert.Equal(t, "polished summary", result.Text)
}

func TestFallback_TemplateOnServiceError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	gen := NewFallback(&FakeGenerator{Err: errors.New("quota exceeded")}, logger)

	result := gen.OptimizeSummary(context.Background(), profile())

	assert.Equal(t, SourceTemplate, result.Source)
	assert.NotEmpty(t, result.Text)
	// The failure is observable in the logs even though the call succeeded.
	assert.Contains(t, buf.String(), "template fallback")
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestFallback_TemplateWhenNoServiceConfigured(t *testing.T) {
	gen := NewFallback(nil, nil)

	result := gen.GenerateCoverLetter(context.Background(), profile(), CoverLetterRequest{
		JobTitle:    "Senior Go Engineer",
		CompanyName: "Initech",
	})

	assert.Equal(t, SourceTemplate, result.Source)
	assert.Contains(t, result.Text, "Senior Go Engineer")
	assert.Contains(t, result.Text, "Initech")
	assert.Contains(t, result.Text, "Dev One")
}

func TestTemplateSummary_Deterministic(t *testing.T) {
	p := profile()
	first := TemplateSummary(p)
	second := TemplateSummary(p)
	assert.Equal(t, first, second)

	// The variant is selected by summary length.
	templates := SummaryTemplates(p)
	assert.Equal(t, templates[len(p.Summary)%len(templates)], first)
}

func TestTemplateSummary_SeniorityBands(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{years: 7, want: "Senior"},
		{years: 4, want: "Experienced"},
		{years: 1, want: "Skilled"},
	}
	for _, tt := range tests {
		p := profile()
		p.YearsOfExp = tt.years
		p.Summary = "" // select the first template, which leads with seniority
		got := TemplateSummary(p)
		assert.Contains(t, got, tt.want)
	}
}

func TestTemplateCoverLetter_DefaultsForEmptyExperience(t *testing.T) {
	p := profile()
	p.RecentTitle = ""
	p.RecentCompany = ""

	letter := TemplateCoverLetter(p, CoverLetterRequest{JobTitle: "Engineer", CompanyName: "Initech"})

	require.Contains(t, letter, "Software Developer")
	require.Contains(t, letter, "my previous company")
}
