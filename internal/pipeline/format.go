package pipeline

import (
	"fmt"
	"strings"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// Markdown renderers for the UI shells. Missing free-form keys get
// placeholder labels rather than dropping the entry.

// FormatResumeAnalysis renders a resume analysis for display.
func FormatResumeAnalysis(r *models.ResumeAnalysis) string {
	var sb strings.Builder
	sb.WriteString("## Resume Analysis Results\n\n")
	sb.WriteString("### Summary\n")
	sb.WriteString(r.Summary)
	sb.WriteString("\n\n### Skills\n")
	sb.WriteString(strings.Join(r.Skills, ", "))
	sb.WriteString("\n\n### Experience\n")
	for _, exp := range r.Experience {
		sb.WriteString(fmt.Sprintf("- **%s** at *%s*\n", entryField(exp, "title", "Role"), entryField(exp, "company", "Company")))
		if dates, ok := exp["dates"]; ok {
			sb.WriteString(fmt.Sprintf("  %v\n", dates))
		}
		if desc, ok := exp["description"]; ok {
			sb.WriteString(fmt.Sprintf("  %v\n", desc))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("### Education\n")
	for _, edu := range r.Education {
		sb.WriteString(fmt.Sprintf("- **%s** from *%s*\n", entryField(edu, "degree", "Degree"), entryField(edu, "institution", "Institution")))
		if dates, ok := edu["dates"]; ok {
			sb.WriteString(fmt.Sprintf("  %v\n", dates))
		}
		if desc, ok := edu["description"]; ok {
			sb.WriteString(fmt.Sprintf("  %v\n", desc))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatJobAnalysis renders a job analysis for display.
func FormatJobAnalysis(j *models.JobAnalysis) string {
	var sb strings.Builder
	sb.WriteString("## Job Analysis Results\n\n")
	sb.WriteString("### Required Skills\n")
	sb.WriteString(strings.Join(j.RequiredSkills, ", "))
	sb.WriteString("\n\n### Preferred Skills\n")
	sb.WriteString(strings.Join(j.PreferredSkills, ", "))
	sb.WriteString("\n\n### Responsibilities\n")
	writeBullets(&sb, j.Responsibilities)
	sb.WriteString("\n### Company Values\n")
	writeBullets(&sb, j.CompanyValues)
	sb.WriteString("\n### Keywords\n")
	sb.WriteString(strings.Join(j.Keywords, ", "))
	sb.WriteString("\n")
	return sb.String()
}

// FormatCustomization renders customization recommendations for display.
func FormatCustomization(c *models.ResumeCustomization) string {
	var sb strings.Builder
	sb.WriteString("## Resume Customization Recommendations\n\n")
	sb.WriteString("### Highlighted Skills\n")
	sb.WriteString(strings.Join(c.HighlightedSkills, ", "))
	sb.WriteString("\n\n### Experience to Emphasize\n")
	for category, items := range c.ExperienceEmphasize {
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", category, strings.Join(items, "; ")))
	}
	sb.WriteString("\n### Suggested Additions\n")
	writeBullets(&sb, c.SuggestedAdditions)
	sb.WriteString("\n### Suggested Removals\n")
	writeBullets(&sb, c.SuggestedRemovals)
	return sb.String()
}

// FormatJobMatch renders a match assessment for display. The numeric score
// is repeated in the heading text for shells without a dedicated score
// widget.
func FormatJobMatch(m *models.JobMatch) string {
	var sb strings.Builder
	sb.WriteString("## Job Match Analysis\n\n")
	sb.WriteString(fmt.Sprintf("Match Score: %d%%\n\n", m.MatchScore))
	sb.WriteString("### Matching Skills\n")
	sb.WriteString(strings.Join(m.MatchingSkills, ", "))
	sb.WriteString("\n\n### Missing Skills\n")
	sb.WriteString(strings.Join(m.MissingSkills, ", "))
	sb.WriteString("\n\n### Experience Alignment\n")
	sb.WriteString(m.ExperienceAlignment)
	sb.WriteString("\n\n### Strengths\n")
	sb.WriteString(strings.Join(m.Strengths, ", "))
	sb.WriteString("\n\n### Weaknesses\n")
	sb.WriteString(strings.Join(m.Weaknesses, ", "))
	sb.WriteString("\n\n### Recommendations\n")
	sb.WriteString(strings.Join(m.Recommendations, ", "))
	sb.WriteString("\n")
	return sb.String()
}

func entryField(entry map[string]any, key, fallback string) string {
	if v, ok := entry[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return fallback
}

func writeBullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}
