package rag

import (
	"fmt"
	"strings"
)

const (
	// smallSampleThreshold is the sample size below which quality is
	// downgraded to limited.
	smallSampleThreshold = 3

	// feedbackMarker is the section header the document builder emits for
	// qualitative feedback; its absence from an excerpt means the chunk
	// carries no review text.
	feedbackMarker = "Student Feedback"

	warnGradesMissing   = "Grade data not available for some students"
	warnFeedbackMissing = "Qualitative feedback missing for some students"
	warnValidationError = "Validation error"
)

// ValidateSample inspects the retrieved items' metadata and content to
// estimate sample adequacy and completeness. Missing-data warnings alone do
// not downgrade quality; only a small sample does. Any unexpected failure
// during inspection is contained here and reported as unknown quality.
func ValidateSample(items []RetrievedItem) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ValidationResult{
				Warnings: []string{warnValidationError},
				Quality:  QualityUnknown,
			}
		}
	}()

	result = ValidationResult{Quality: QualityHigh}

	studentIDs := make(map[string]struct{})
	gradesPresent := true
	feedbackPresent := true

	for _, item := range items {
		if id, ok := studentID(item.Meta); ok {
			studentIDs[id] = struct{}{}
		}
		if _, ok := item.Meta["final_exam"]; !ok {
			gradesPresent = false
		}
		if !strings.Contains(item.Content, feedbackMarker) {
			feedbackPresent = false
		}
	}

	result.SampleSize = len(studentIDs)

	if !gradesPresent {
		result.Warnings = append(result.Warnings, warnGradesMissing)
	}
	if !feedbackPresent {
		result.Warnings = append(result.Warnings, warnFeedbackMissing)
	}
	if result.SampleSize < smallSampleThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Small sample size (%d students)", result.SampleSize))
		result.Quality = QualityLimited
	}

	return result
}

// studentID extracts the record identifier from item metadata. Items
// lacking one are ignored for counting but are not an error.
func studentID(meta map[string]any) (string, bool) {
	v, ok := meta["student_id"]
	if !ok {
		return "", false
	}
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return id, true
	case int64:
		return fmt.Sprintf("%d", id), true
	case float64:
		return fmt.Sprintf("%g", id), true
	default:
		return "", false
	}
}
