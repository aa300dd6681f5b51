package profile

import (
	"fmt"

	"github.com/heartmarshall/personalens/internal/domain"
)

// classifyFrequency renders a posting-frequency label from the activity
// records. Fewer than two records is not enough signal to rate at all.
//
// The time span is measured in whole elapsed days between the earliest and
// latest record. A span of zero whole days (everything within 24h) counts as
// "very active"; a span of exactly one whole day divides normally, so two
// records one day apart rate as "2.0 posts/day".
func classifyFrequency(records []domain.ActivityRecord) string {
	if len(records) < 2 {
		return "Limited data"
	}

	earliest := records[0].CreatedAt
	latest := records[0].CreatedAt
	for _, rec := range records[1:] {
		if rec.CreatedAt.Before(earliest) {
			earliest = rec.CreatedAt
		}
		if rec.CreatedAt.After(latest) {
			latest = rec.CreatedAt
		}
	}

	days := int(latest.Sub(earliest).Hours() / 24)
	if days <= 0 {
		return "Very active (multiple posts per day)"
	}

	perDay := float64(len(records)) / float64(days)
	if perDay >= 1.0 {
		return fmt.Sprintf("%.1f posts/day", perDay)
	}
	return fmt.Sprintf("%.1f posts/week", perDay*7)
}
