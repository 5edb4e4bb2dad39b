package rag

import (
	"fmt"
	"strings"
)

// comparativeTemplate frames a cross-group analysis. Field order: context,
// question.
const comparativeTemplate = `Analyze the course enrollment data and provide a detailed comparison.
Focus on:
1. Clear statistical comparison between groups
2. Notable patterns or differences
3. Important context or limitations of the comparison

Context: %s
Question: %s

Comparative Analysis:`

// standardTemplate frames a single-group analysis. Field order: group
// label, context, question, data-limitations summary.
const standardTemplate = `Analyze the course enrollment data based only on the provided context.
%sProvide specific insights with evidence.

Context: %s
Question: %s
Data Limitations: %s

Analysis:`

// BuildPrompt selects the template variant for the classification and
// populates it. Pure string interpolation; the only branch is the
// classification itself.
func BuildPrompt(comparative bool, contextBlock, question string, filter map[string]any, validation ValidationResult) string {
	if comparative {
		return fmt.Sprintf(comparativeTemplate, contextBlock, question)
	}

	label := GroupLabel(filter)
	if label != "" {
		label += " "
	}
	return fmt.Sprintf(standardTemplate, label, contextBlock, question, warningSummary(validation))
}

// GroupLabel returns the active filter's group label: the value of a
// gender filter key, or the empty string when there is no such filter.
func GroupLabel(filter map[string]any) string {
	if filter == nil {
		return ""
	}
	if gender, ok := filter["gender"].(string); ok {
		return gender
	}
	return ""
}

// warningSummary flattens the validator's warnings into the prompt's
// data-limitations line.
func warningSummary(validation ValidationResult) string {
	if len(validation.Warnings) == 0 {
		return "None"
	}
	return strings.Join(validation.Warnings, "; ")
}
