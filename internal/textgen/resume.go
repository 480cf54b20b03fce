package textgen

import (
	"context"
	"fmt"
	"strings"
)

// ResumeProfile is the subset of resume state the generators consume.
type ResumeProfile struct {
	Name          string
	Summary       string
	Skills        []string
	YearsOfExp    int
	RecentTitle   string
	RecentCompany string
}

// CoverLetterRequest names the role a cover letter targets.
type CoverLetterRequest struct {
	JobTitle    string
	CompanyName string
}

func seniority(years int) string {
	switch {
	case years >= 5:
		return "Senior"
	case years >= 3:
		return "Experienced"
	default:
		return "Skilled"
	}
}

func topSkills(skills []string, n int) string {
	if len(skills) > n {
		skills = skills[:n]
	}
	return strings.Join(skills, ", ")
}

// SummaryTemplates returns the rule-based summary variants for a profile.
func SummaryTemplates(p ResumeProfile) []string {
	years := p.YearsOfExp
	if years == 0 {
		years = 3
	}
	level := seniority(years)
	skills := topSkills(p.Skills, 4)
	return []string{
		fmt.Sprintf("%s Full Stack Developer with %d+ years of expertise in %s. Proven track record of delivering scalable web applications and driving technical innovation in fast-paced environments.", level, years, skills),
		fmt.Sprintf("Results-driven Software Engineer with %d+ years of experience building high-performance applications using %s. Passionate about clean code, system architecture, and mentoring development teams.", years, skills),
		fmt.Sprintf("%s Developer specializing in %s with %d+ years of experience. Expert in full-stack development, cloud technologies, and agile methodologies with a focus on delivering exceptional user experiences.", level, skills, years),
	}
}

// TemplateSummary picks a summary variant deterministically from the current
// summary length, matching the client's rule-based optimizer.
func TemplateSummary(p ResumeProfile) string {
	templates := SummaryTemplates(p)
	return templates[len(p.Summary)%len(templates)]
}

// TemplateCoverLetter renders the deterministic cover-letter fallback.
func TemplateCoverLetter(p ResumeProfile, req CoverLetterRequest) string {
	title := p.RecentTitle
	if title == "" {
		title = "Software Developer"
	}
	company := p.RecentCompany
	if company == "" {
		company = "my previous company"
	}
	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s. With my background in %s and proven experience in software development, I am excited about the opportunity to contribute to your team.

%s

In my recent role as %s at %s, I have:
- Developed and maintained software applications
- Collaborated with cross-functional teams
- Delivered high-quality solutions on time

I am particularly drawn to %s because of your commitment to innovation and excellence in technology. I believe my skills in %s align perfectly with your needs for this role.

I would welcome the opportunity to discuss how my experience and passion for technology can contribute to %s's continued success. Thank you for considering my application.

Sincerely,
%s`,
		req.JobTitle, req.CompanyName, topSkills(p.Skills, 3),
		p.Summary,
		title, company,
		req.CompanyName, topSkills(p.Skills, 4),
		req.CompanyName,
		p.Name,
	)
}

// OptimizeSummary generates an improved resume summary, preferring the
// external service and falling back to the rule-based template.
func (f *Fallback) OptimizeSummary(ctx context.Context, p ResumeProfile) Result {
	prompt := fmt.Sprintf("Optimize this resume summary for impact and clarity: %q", p.Summary)
	system := "You are an expert resume writer. Provide only the optimized summary text without any additional formatting or explanations."
	return f.Generate(ctx, prompt, system, func() string {
		return TemplateSummary(p)
	})
}

// GenerateCoverLetter generates a cover letter, preferring the external
// service and falling back to the template.
func (f *Fallback) GenerateCoverLetter(ctx context.Context, p ResumeProfile, req CoverLetterRequest) Result {
	prompt := fmt.Sprintf("Write a cover letter for the %s position at %s for %s.", req.JobTitle, req.CompanyName, p.Name)
	system := "You are an expert career counselor. Write a compelling, professional cover letter that highlights the candidate's relevant experience and skills for the specific role."
	return f.Generate(ctx, prompt, system, func() string {
		return TemplateCoverLetter(p, req)
	})
}
