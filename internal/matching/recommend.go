package matching

// Recommendation tier messages, keyed by the lower bound of each tier.
const (
	RecommendationExcellent = "Excellent match - Highly recommended for this position"
	RecommendationGood      = "Good match - Strong candidate for this position"
	RecommendationModerate  = "Moderate match - Consider with additional training"
	RecommendationWeak      = "Weak match - Significant skill gaps for this position"
	RecommendationPoor      = "Poor match - Not recommended for this position"
)

// Recommendation maps an overall match percentage (0-100) to its qualitative
// tier. Boundaries are inclusive on the lower threshold.
func Recommendation(overallMatch float64) string {
	switch {
	case overallMatch >= 85:
		return RecommendationExcellent
	case overallMatch >= 70:
		return RecommendationGood
	case overallMatch >= 50:
		return RecommendationModerate
	case overallMatch >= 30:
		return RecommendationWeak
	default:
		return RecommendationPoor
	}
}
