// Package domain contains the core data types for the NoteKeep service.
// This package holds no business logic and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Priority is the urgency label attached to a note.
type Priority string

// The three recognized priority values. Anything else is rejected at the
// service boundary and never stored.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the recognized priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ToggleField names one of the boolean status flags a note carries.
type ToggleField string

// The flippable status flags.
const (
	TogglePinned   ToggleField = "pinned"
	ToggleArchived ToggleField = "archived"
	ToggleTrashed  ToggleField = "trashed"
)

// Note represents a user's text memo with its status flags and metadata.
// ID and Owner are immutable after creation; CreatedAt and UpdatedAt are
// system-managed, and every successful mutation advances UpdatedAt.
type Note struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Tags       []string   `json:"tags"`
	Priority   Priority   `json:"priority"`
	ColorLabel string     `json:"colorLabel,omitempty"`
	ReminderAt *time.Time `json:"reminderAt,omitempty"` // nil when no reminder is set
	IsPinned   bool       `json:"isPinned"`
	IsArchived bool       `json:"isArchived"`
	IsTrashed  bool       `json:"isTrashed"`
	Owner      string     `json:"owner"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
