package matching

import "github.com/LAWSA07/ProFel/internal/types"

// StrengthPolicy selects the criterion used to flag a matched requirement as
// a candidate strength.
type StrengthPolicy string

const (
	// StrengthImportanceWeighted flags requirements where the achieved score
	// clears 70% of the requirement's importance. This is the default.
	StrengthImportanceWeighted StrengthPolicy = "importance_weighted"
	// StrengthHighBar flags only important requirements (importance >= 0.7)
	// matched strongly (score >= 0.8).
	StrengthHighBar StrengthPolicy = "high_bar"
)

// Valid reports whether the policy is one of the known values.
func (p StrengthPolicy) Valid() bool {
	return p == StrengthImportanceWeighted || p == StrengthHighBar
}

// Thresholds for the strength criteria.
const (
	strengthImportanceRatio = 0.7
	strengthMinImportance   = 0.7
	strengthMinScore        = 0.8
)

// strengths picks the skill names a candidate satisfies well above the bar.
func strengths(matches []types.SkillMatch, policy StrengthPolicy) []string {
	out := []string{}
	for _, match := range matches {
		switch policy {
		case StrengthHighBar:
			if match.JobImportance >= strengthMinImportance && match.MatchScore >= strengthMinScore {
				out = append(out, match.SkillName)
			}
		default:
			if match.MatchScore > 0 && match.MatchScore >= strengthImportanceRatio*match.JobImportance {
				out = append(out, match.SkillName)
			}
		}
	}
	return out
}
