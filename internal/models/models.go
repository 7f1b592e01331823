package models

import "time"

// MoodEntry represents a single logged mood.
type MoodEntry struct {
	ID         string    `json:"id"`
	Value      int       `json:"value"`
	Label      string    `json:"label"`
	OccurredAt time.Time `json:"occurred_at"`
	Tags       []string  `json:"tags"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateMoodEntryRequest represents the request to log a mood.
// Either Value or Label must be set; when both are set they must agree.
type CreateMoodEntryRequest struct {
	Value      int       `json:"value"`
	Label      string    `json:"label"`
	OccurredAt time.Time `json:"occurred_at" binding:"required"`
	Tags       []string  `json:"tags"`
	Note       *string   `json:"note"`
}

// UpdateMoodEntryRequest represents the request to update a mood entry.
// Absent fields are left unchanged. Note uses NullableString so clients can
// clear a note with an explicit null.
type UpdateMoodEntryRequest struct {
	Value      *int           `json:"value"`
	Label      *string        `json:"label"`
	OccurredAt *time.Time     `json:"occurred_at"`
	Tags       []string       `json:"tags"`
	Note       NullableString `json:"note"`
}

// MoodEntryList is a paginated list of mood entries.
type MoodEntryList struct {
	Entries []MoodEntry `json:"entries"`
	Total   int64       `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}

// TagCount is a tag with its usage count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}
