// Package jobs provides utilities for building job postings from sparse
// specs: skill splitting, position-based importance, level detection, and
// description generation.
package jobs

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/LAWSA07/ProFel/internal/types"
)

// Job seniority levels derived from the title.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

var skillSeparators = regexp.MustCompile(`[,;\n•]+`)

var seniorTerms = []string{"senior", "sr", "lead", "principal", "staff", "architect", "manager", "head", "chief", "cto", "vp"}

var entryTerms = []string{"junior", "jr", "entry", "intern", "trainee", "graduate", "associate"}

// SplitSkills splits free text on common skill separators, trimming and
// dropping entries shorter than two characters.
func SplitSkills(text string) []string {
	if text == "" {
		return nil
	}

	out := []string{}
	for _, raw := range skillSeparators.Split(text, -1) {
		cleaned := strings.Trim(strings.TrimSpace(raw), ".")
		if len(cleaned) > 1 {
			out = append(out, cleaned)
		}
	}
	return out
}

// ImportanceByPosition derives a skill's importance from its position in a
// most-important-first list. The curve runs linearly from 1.0 down to 0.1,
// rounded to one decimal. A single skill gets full importance; out-of-range
// positions get the 0.5 default.
func ImportanceByPosition(position, total int) float64 {
	if total == 0 || position < 0 || position >= total {
		return types.DefaultImportance
	}
	if total == 1 {
		return 1.0
	}

	const minImportance = 0.1
	importance := 1.0 - (1.0-minImportance)*float64(position)/float64(total-1)
	return math.Round(importance*10) / 10
}

// LevelFromTitle infers the seniority level of a position from its title.
func LevelFromTitle(title string) string {
	lower := strings.ToLower(title)

	for _, term := range seniorTerms {
		if strings.Contains(lower, term) {
			return LevelSenior
		}
	}
	for _, term := range entryTerms {
		if strings.Contains(lower, term) {
			return LevelEntry
		}
	}
	return LevelMid
}

// GenerateDescription produces a standardized job description from a title,
// company, skill list, and location.
func GenerateDescription(title, company string, skillNames []string, location string) string {
	if location == "" {
		location = "Remote"
	}

	var intro, experience string
	switch LevelFromTitle(title) {
	case LevelEntry:
		intro = fmt.Sprintf("%s is looking for an entry-level %s to join our team.", company, title)
		experience = "This is an excellent opportunity for recent graduates or developers early in their career path."
	case LevelSenior:
		intro = fmt.Sprintf("%s is seeking an experienced %s to lead our technical initiatives.", company, title)
		experience = "The ideal candidate will have extensive experience and can mentor junior team members."
	default:
		intro = fmt.Sprintf("%s is hiring a %s to strengthen our development team.", company, title)
		experience = "We're looking for someone with proven experience who can hit the ground running."
	}

	skillsSection := "Experience with relevant technologies is required."
	if len(skillNames) > 0 {
		top := skillNames
		if len(top) > 5 {
			top = top[:5]
		}
		skillsSection = fmt.Sprintf("Key technologies include %s, among others.", strings.Join(top, ", "))
	}

	return fmt.Sprintf("%s %s %s This position is located in %s.", intro, experience, skillsSection, location)
}

// Build constructs a full Job from a sparse spec. Skills without explicit
// weights get position-based importance; the description is generated when
// absent.
func Build(spec types.JobSpec) types.Job {
	requirements := make([]types.Skill, 0, len(spec.Skills))
	names := make([]string, 0, len(spec.Skills))
	for i, skill := range spec.Skills {
		weight := skill.Weight
		if weight == 0 {
			weight = ImportanceByPosition(i, len(spec.Skills))
		}
		requirements = append(requirements, types.Skill{
			Name:   skill.Name,
			Weight: types.ClampWeight(weight),
		})
		names = append(names, skill.Name)
	}

	return types.Job{
		Title:        spec.Title,
		Company:      spec.Company,
		Location:     spec.Location,
		Description:  GenerateDescription(spec.Title, spec.Company, names, spec.Location),
		Requirements: requirements,
	}
}
