// Package aggregate merges per-platform candidate profiles into one combined
// profile.
package aggregate

import (
	"github.com/LAWSA07/ProFel/internal/skills"
	"github.com/LAWSA07/ProFel/internal/types"
)

// Combine merges multiple platform profiles into a single combined profile.
//
// The base identity comes from the first profile in the list, so callers
// place the most authoritative profile first. Skills are unioned by
// normalized name keeping the first literal spelling. Platform-specific
// sections merge additively: GitHub extends repositories, LinkedIn extends
// experience/education/certifications, LeetCode sets solved problems and
// recent submissions (last writer wins), and any platform's projects are
// extended. Returns the zero value for an empty input.
func Combine(profiles []types.PlatformProfile) types.CombinedProfile {
	if len(profiles) == 0 {
		return types.CombinedProfile{}
	}

	combined := types.CombinedProfile{
		ID:             "combined_" + profiles[0].ID,
		Name:           profiles[0].Name,
		Skills:         []types.Skill{},
		Repositories:   []types.RawRecord{},
		Projects:       []types.RawRecord{},
		Experience:     []types.RawRecord{},
		Education:      []types.RawRecord{},
		Certifications: []types.RawRecord{},
		Platforms:      make([]string, 0, len(profiles)),
	}

	seen := make(map[string]bool)

	for _, profile := range profiles {
		combined.Platforms = append(combined.Platforms, profile.Platform)

		for _, skill := range profileSkills(profile) {
			key := skills.Normalize(skill.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			combined.Skills = append(combined.Skills, skill)
		}

		switch profile.Platform {
		case types.PlatformGitHub:
			combined.Repositories = append(combined.Repositories, recordList(profile.Data["repositories"])...)
		case types.PlatformLinkedIn:
			combined.Experience = append(combined.Experience, recordList(profile.Data["experience"])...)
			combined.Education = append(combined.Education, recordList(profile.Data["education"])...)
			combined.Certifications = append(combined.Certifications, recordList(profile.Data["certifications"])...)
		case types.PlatformLeetCode:
			if solved, ok := profile.Data["solved_problems"].(map[string]any); ok && len(solved) > 0 {
				combined.ProblemSolving = solved
			}
			if submissions := recordList(profile.Data["recent_submissions"]); len(submissions) > 0 {
				combined.Submissions = submissions
			}
		}

		combined.Projects = append(combined.Projects, recordList(profile.Data["projects"])...)
	}

	return combined
}

// CombinedSkills extracts the deduplicated skill union without building the
// full combined profile.
func CombinedSkills(profiles []types.PlatformProfile) []types.Skill {
	out := []types.Skill{}
	seen := make(map[string]bool)
	for _, profile := range profiles {
		for _, skill := range profileSkills(profile) {
			key := skills.Normalize(skill.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skill)
		}
	}
	return out
}

func profileSkills(profile types.PlatformProfile) []types.Skill {
	return skills.ExtractProfileSkills(profile.Data)
}

func recordList(v any) []types.RawRecord {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]types.RawRecord, 0, len(list))
	for _, item := range list {
		if record, ok := item.(map[string]any); ok {
			out = append(out, record)
		}
	}
	return out
}
