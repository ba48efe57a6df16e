package domain

import "time"

// NotePatch is a partial-field update for a note. Nil fields are left
// untouched by the store; non-nil fields overwrite the stored value.
// Tags is a pointer to a slice so that "replace with empty" and "leave
// alone" stay distinguishable.
type NotePatch struct {
	Title      *string
	Content    *string
	Tags       *[]string
	Priority   *Priority
	ColorLabel *string
	ReminderAt *time.Time
	IsPinned   *bool
	IsArchived *bool
	IsTrashed  *bool
}

// IsZero reports whether the patch carries no fields at all.
func (p NotePatch) IsZero() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil &&
		p.Priority == nil && p.ColorLabel == nil && p.ReminderAt == nil &&
		p.IsPinned == nil && p.IsArchived == nil && p.IsTrashed == nil
}
