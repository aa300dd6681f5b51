package domain

import (
	"slices"
	"time"
)

// RecordKind distinguishes posts from comments in an activity stream.
type RecordKind string

const (
	KindPost    RecordKind = "post"
	KindComment RecordKind = "comment"
)

// ActivityRecord is one post or comment authored by the analyzed subject.
// Records are immutable once retrieved; they live only for a single
// analysis run and are never persisted across runs.
type ActivityRecord struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"` // empty for comments
	Body      string     `json:"content"`
	Community string     `json:"subreddit"`
	Score     int        `json:"score"`
	CreatedAt time.Time  `json:"created_utc"`
	Kind      RecordKind `json:"post_type"`
	Permalink string     `json:"url"`
}

// ActivityLog holds the activity records of one subject in retrieval order.
// It exposes read-only access: records are copied on construction and on
// read, so neither the producer nor a consumer can mutate the sequence.
// An empty log is a valid input to every downstream stage.
type ActivityLog struct {
	records []ActivityRecord
}

// NewActivityLog creates an ActivityLog from records in retrieval order.
func NewActivityLog(records []ActivityRecord) *ActivityLog {
	return &ActivityLog{records: slices.Clone(records)}
}

// Len returns the number of records in the log.
func (l *ActivityLog) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in retrieval order.
func (l *ActivityLog) Records() []ActivityRecord {
	return slices.Clone(l.records)
}
