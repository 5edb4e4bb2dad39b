package rag

import "strings"

const (
	recBroadenFilter  = "Consider broadening filter criteria to include more students"
	recCompleteGrades = "For grade analysis, focus on students with complete grade records"
)

// qualityExplanations maps data quality to the fixed explanation shown to
// users.
var qualityExplanations = map[DataQuality]string{
	QualityHigh:    "Results are highly reliable with good sample size and complete data",
	QualityLimited: "Results should be interpreted cautiously due to data limitations",
	QualityUnknown: "Unable to fully verify data quality",
}

const fallbackExplanation = "Data quality assessment inconclusive"

// ScoreReliability converts a ValidationResult into a 0-100 reliability
// score with recommendations. Pure and deterministic.
//
// Starting from 100: -40 for a sample under 3 (else -20 under 5), then -15
// per warning mentioning "missing" and -10 per warning mentioning "small
// sample". The sample-size and warning deductions are cumulative, so a
// small sample is penalized twice by design. The score never goes below 0.
func ScoreReliability(validation ValidationResult) ReliabilityAssessment {
	score := 100
	if validation.SampleSize < 3 {
		score -= 40
	} else if validation.SampleSize < 5 {
		score -= 20
	}

	for _, warning := range validation.Warnings {
		lower := strings.ToLower(warning)
		if strings.Contains(lower, "missing") {
			score -= 15
		} else if strings.Contains(lower, "small sample") {
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}

	var recommendations []string
	if validation.SampleSize < 3 {
		recommendations = append(recommendations, recBroadenFilter)
	}
	for _, warning := range validation.Warnings {
		if strings.Contains(warning, "Grade data not available") {
			recommendations = append(recommendations, recCompleteGrades)
			break
		}
	}

	explanation, ok := qualityExplanations[validation.Quality]
	if !ok {
		explanation = fallbackExplanation
	}

	return ReliabilityAssessment{
		Score:           score,
		Recommendations: recommendations,
		Explanation:     explanation,
	}
}
