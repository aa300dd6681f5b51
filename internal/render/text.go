// Package render turns a completed Persona into output documents: plain text
// with block-character bars, a standalone HTML page, and indented JSON.
package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/personalens/internal/domain"
)

const rule = "================================================================================"

// Text renders the persona as a human-readable report with visual motivation
// bars and personality sliders.
func Text(p *domain.Persona) string {
	var b strings.Builder

	b.WriteString("\n" + rule + "\n")
	b.WriteString(strings.ToUpper(p.Name) + "\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("BASIC INFORMATION:\n")
	fmt.Fprintf(&b, "- Age Range: %s\n", p.AgeRange)
	fmt.Fprintf(&b, "- Occupation: %s\n", p.OccupationCategory)
	fmt.Fprintf(&b, "- Status: %s\n", p.Status)
	fmt.Fprintf(&b, "- Location Type: %s\n", p.LocationType)
	fmt.Fprintf(&b, "- Tier: %s\n", p.Tier)
	fmt.Fprintf(&b, "- Archetype: %s\n", p.Archetype)

	b.WriteString("\nPERSONALITY TRAITS:\n")
	b.WriteString(formatTraits(p.PersonalityTraits) + "\n")

	b.WriteString("\nMOTIVATIONS:\n")
	b.WriteString(formatMotivations(p.Motivations) + "\n")

	b.WriteString("\nPERSONALITY DIMENSIONS:\n")
	b.WriteString(formatScores(p.PersonalityScores) + "\n")

	b.WriteString("\nBEHAVIOR & HABITS:\n")
	b.WriteString(formatList(p.BehaviorHabits) + "\n")

	b.WriteString("\nFRUSTRATIONS:\n")
	b.WriteString(formatList(p.Frustrations) + "\n")

	b.WriteString("\nGOALS & NEEDS:\n")
	b.WriteString(formatList(p.GoalsNeeds) + "\n")

	b.WriteString("\nREPRESENTATIVE QUOTE:\n")
	fmt.Fprintf(&b, "%q\n", p.Quote)

	if prof := p.Profile; prof != nil {
		b.WriteString("\n" + rule + "\n")
		b.WriteString("PROFILE DATA\n")
		b.WriteString(rule + "\n\n")

		fmt.Fprintf(&b, "- Username: %s\n", prof.Username)
		fmt.Fprintf(&b, "- Account Age: %s\n", prof.AccountAge)
		fmt.Fprintf(&b, "- Post Karma: %d\n", prof.Karma.Post)
		fmt.Fprintf(&b, "- Comment Karma: %d\n", prof.Karma.Comment)
		fmt.Fprintf(&b, "- Total Karma: %d\n", prof.Karma.Total)
		fmt.Fprintf(&b, "- Verified: %s\n", yesNo(prof.Verified))
		fmt.Fprintf(&b, "- Premium: %s\n", yesNo(prof.Premium))

		b.WriteString("\nACTIVITY SUMMARY:\n")
		fmt.Fprintf(&b, "- Total Posts: %d\n", prof.TotalPosts)
		fmt.Fprintf(&b, "- Total Comments: %d\n", prof.TotalComments)
		fmt.Fprintf(&b, "- Average Score: %.1f\n", prof.AvgScore)
		fmt.Fprintf(&b, "- Posting Frequency: %s\n", prof.PostingFrequency)

		b.WriteString("\nACTIVE COMMUNITIES:\n")
		b.WriteString(formatCommunities(prof.TopCommunities) + "\n")

		bio := prof.Bio
		if bio == "" {
			bio = "No bio provided"
		}
		fmt.Fprintf(&b, "\nBIO: %s\n", bio)

		b.WriteString("\nSOCIAL LINKS:\n")
		if len(prof.SocialLinks) == 0 {
			b.WriteString("- None\n")
		} else {
			b.WriteString(formatList(prof.SocialLinks) + "\n")
		}
	}

	b.WriteString("\nCITATIONS:\n")
	b.WriteString(formatCitations(p.Citations) + "\n")

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n", p.GeneratedAt.Format(time.DateTime))
	b.WriteString(rule + "\n")

	return b.String()
}

func formatTraits(traits []string) string {
	if len(traits) == 0 {
		return "- None specified"
	}
	boxed := make([]string, len(traits))
	for i, trait := range traits {
		boxed[i] = "[" + trait + "]"
	}
	return strings.Join(boxed, "  ")
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "- None specified"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func formatCommunities(communities []domain.CommunityActivity) string {
	if len(communities) == 0 {
		return "- None"
	}
	lines := make([]string, len(communities))
	for i, c := range communities {
		lines[i] = fmt.Sprintf("- r/%s: %d posts", c.Name, c.Count)
	}
	return strings.Join(lines, "\n")
}

// formatMotivations draws a 10-block bar per motivation on the 0-10 scale.
// Out-of-range values are clamped for display only.
func formatMotivations(motivations map[string]int) string {
	if len(motivations) == 0 {
		return "- None specified"
	}
	lines := make([]string, 0, len(motivations))
	for _, key := range sortedKeys(motivations) {
		value := motivations[key]
		if value < 0 {
			value = 0
		}
		if value > 10 {
			value = 10
		}
		bar := strings.Repeat("█", value) + strings.Repeat("░", 10-value)
		lines = append(lines, fmt.Sprintf("%-15s %s", key, bar))
	}
	return strings.Join(lines, "\n")
}

// formatScores draws a 20-position slider per axis, the thumb placed at the
// 0.0-1.0 value between the axis poles.
func formatScores(scores map[string]float64) string {
	if len(scores) == 0 {
		return "- None specified"
	}
	lines := make([]string, 0, len(scores))
	for _, key := range sortedKeys(scores) {
		left, right := axisPoles(key)
		position := int(scores[key] * 20)
		if position < 0 {
			position = 0
		}
		if position > 19 {
			position = 19
		}
		bar := strings.Repeat("░", position) + "█" + strings.Repeat("░", 19-position)
		lines = append(lines, fmt.Sprintf("%-12s %s %s", left, bar, right))
	}
	return strings.Join(lines, "\n")
}

// axisPoles resolves a score key like "introvert_extrovert" into its two
// uppercase pole labels.
func axisPoles(key string) (string, string) {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return strings.ToUpper(key), ""
	}
	return strings.ToUpper(parts[0]), strings.ToUpper(parts[1])
}

func formatCitations(citations map[string][]string) string {
	if len(citations) == 0 {
		return "- No citations available"
	}
	var lines []string
	for _, category := range sortedKeys(citations) {
		lines = append(lines, "", strings.ToUpper(category)+":")
		for _, source := range citations[category] {
			lines = append(lines, "  - "+source)
		}
	}
	return strings.Join(lines, "\n")
}

// sortedKeys returns map keys in lexical order for stable output.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
