// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/LAWSA07/ProFel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a weighted match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.ProfileName))
	sb.WriteString(fmt.Sprintf("Position:  %s @ %s\n", result.JobTitle, result.Company))
	sb.WriteString(fmt.Sprintf("Match:     %.0f%%\n", result.OverallMatch))
	sb.WriteString("\n")

	if len(result.SkillMatches) > 0 {
		sb.WriteString("Skill Matches:\n")
		count := min(len(result.SkillMatches), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := result.SkillMatches[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f / %.2f)\n",
				match.SkillName, match.MatchScore, match.JobImportance))
		}
		if len(result.SkillMatches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillMatches)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		missing := strings.Join(result.MissingSkills, ", ")
		if len(missing) > 45 {
			missing = missing[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:   %s\n", missing))
	}
	if len(result.Strengths) > 0 {
		strengths := strings.Join(result.Strengths, ", ")
		if len(strengths) > 45 {
			strengths = strengths[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Strengths: %s\n", strengths))
	}
	sb.WriteString("\n")
	sb.WriteString(result.Recommendation)

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchScore outputs the coarse combined score breakdown.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	if score.ProfileName != "" {
		sb.WriteString(fmt.Sprintf("Candidate:  %s\n", score.ProfileName))
	}
	sb.WriteString(fmt.Sprintf("Overall:    %.2f\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:     %.2f\n", score.SkillMatch))
	sb.WriteString(fmt.Sprintf("Similarity: %.2f\n", score.VectorSimilarity))

	if len(score.SkillsMatched) > 0 {
		matched := strings.Join(score.SkillsMatched, ", ")
		if len(matched) > 40 {
			matched = matched[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched:    %s\n", matched))
	}
	if len(score.SkillsMissing) > 0 {
		missing := strings.Join(score.SkillsMissing, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:    %s\n", missing))
	}

	if len(score.PlatformContributions) > 0 {
		sb.WriteString("\nPlatform Contributions:\n")
		platforms := make([]string, 0, len(score.PlatformContributions))
		for platform := range score.PlatformContributions {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)
		for _, platform := range platforms {
			sb.WriteString(fmt.Sprintf("  • %-10s %.2f\n", platform, score.PlatformContributions[platform]))
		}
	}

	if score.Error != "" {
		sb.WriteString(fmt.Sprintf("\n⚠ %s\n", score.Error))
	}

	p.printBox("COMBINED SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfileMatches outputs a profile's ranked job matches, best first.
func (p *Printer) PrintProfileMatches(matches *types.ProfileMatches) {
	if matches == nil || len(matches.Matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", matches.ProfileName))
	sb.WriteString(fmt.Sprintf("Jobs ranked: %d\n\n", len(matches.Matches)))

	count := min(len(matches.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches.Matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, match.JobTitle, match.Company))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%\n", match.OverallMatch))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(matches.Matches)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", sb.String())
}

// PrintCombinedProfile outputs a summary of a merged multi-platform profile.
func (p *Printer) PrintCombinedProfile(profile *types.CombinedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Platforms: %s\n", strings.Join(profile.Platforms, ", ")))
	sb.WriteString(fmt.Sprintf("Skills:    %d\n", len(profile.Skills)))

	if len(profile.Skills) > 0 {
		sb.WriteString("\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f)\n", skill.Name, skill.Weight))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("COMBINED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs a built job posting.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}

	if len(job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := job.Requirements[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f)\n", req.Name, req.Weight))
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}
