package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/personalens/internal/domain"
)

func recordsAt(offsets ...time.Duration) []domain.ActivityRecord {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := make([]domain.ActivityRecord, len(offsets))
	for i, off := range offsets {
		records[i] = domain.ActivityRecord{CreatedAt: base.Add(off)}
	}
	return records
}

func TestClassifyFrequency_LimitedData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Limited data", classifyFrequency(nil))
	assert.Equal(t, "Limited data", classifyFrequency(recordsAt(0)))
}

func TestClassifyFrequency_VeryActive(t *testing.T) {
	t.Parallel()

	// Same instant and sub-day spans both collapse to zero whole days.
	assert.Equal(t, "Very active (multiple posts per day)", classifyFrequency(recordsAt(0, 0)))
	assert.Equal(t, "Very active (multiple posts per day)", classifyFrequency(recordsAt(0, 23*time.Hour)))
}

func TestClassifyFrequency_ExactlyOneDayBoundary(t *testing.T) {
	t.Parallel()

	// A span of exactly 24h is one whole day, not "very active".
	got := classifyFrequency(recordsAt(0, 24*time.Hour))
	assert.Equal(t, "2.0 posts/day", got)
}

func TestClassifyFrequency_Daily(t *testing.T) {
	t.Parallel()

	// 6 records spread over 3 whole days.
	got := classifyFrequency(recordsAt(0, 12*time.Hour, 24*time.Hour, 36*time.Hour, 48*time.Hour, 72*time.Hour))
	assert.Equal(t, "2.0 posts/day", got)
}

func TestClassifyFrequency_Weekly(t *testing.T) {
	t.Parallel()

	// 2 records over 10 days: 0.2/day -> 1.4/week.
	got := classifyFrequency(recordsAt(0, 240*time.Hour))
	assert.Equal(t, "1.4 posts/week", got)
}

func TestClassifyFrequency_OrderIndependent(t *testing.T) {
	t.Parallel()

	// Retrieval order is newest-first; the span must not depend on it.
	got := classifyFrequency(recordsAt(240*time.Hour, 0))
	assert.Equal(t, "1.4 posts/week", got)
}
