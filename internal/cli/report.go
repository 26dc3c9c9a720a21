package cli

import (
	"fmt"
	"strings"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// RenderPatterns formats detected patterns as a terminal report with
// recurring patterns first, matching the order they arrive in.
func RenderPatterns(patterns []model.DetectedPattern) string {
	if len(patterns) == 0 {
		return SubtleStyle.Render("No patterns detected.")
	}

	var recurring, oneOff []model.DetectedPattern
	for _, pat := range patterns {
		if pat.IsRecurring {
			recurring = append(recurring, pat)
		} else {
			oneOff = append(oneOff, pat)
		}
	}

	var sb strings.Builder
	sb.WriteString(FormatTitle("Detected Patterns"))
	sb.WriteString("\n")

	if len(recurring) > 0 {
		sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s Recurring (%d)", RepeatIcon, len(recurring))))
		sb.WriteString("\n")
		for _, pat := range recurring {
			sb.WriteString(renderPattern(pat))
			sb.WriteString("\n")
		}
	}

	if len(oneOff) > 0 {
		sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s Other (%d)", ChartIcon, len(oneOff))))
		sb.WriteString("\n")
		for _, pat := range oneOff {
			sb.WriteString(renderPattern(pat))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func renderPattern(pat model.DetectedPattern) string {
	line := fmt.Sprintf("%s  $%.2f %s  ×%d  %s",
		BoldStyle.Render(pat.Name),
		pat.RepresentativeAmount,
		pat.Frequency,
		pat.OccurrenceCount,
		confidenceBadge(pat.Confidence),
	)

	details := []string{}
	if !pat.FirstSeen.IsZero() {
		details = append(details, fmt.Sprintf("%s → %s",
			pat.FirstSeen.Format("2006-01-02"), pat.LastSeen.Format("2006-01-02")))
	}
	if len(pat.Categories) > 0 {
		details = append(details, strings.Join(pat.Categories, ", "))
	}
	if len(details) > 0 {
		line += "\n  " + SubtleStyle.Render(strings.Join(details, "  ·  "))
	}

	return line
}

// confidenceBadge colors the confidence score by strength.
func confidenceBadge(confidence int) string {
	label := fmt.Sprintf("%d%%", confidence)
	switch {
	case confidence >= 80:
		return SuccessStyle.Render(label)
	case confidence > 60:
		return WarningStyle.Render(label)
	default:
		return SubtleStyle.Render(label)
	}
}
