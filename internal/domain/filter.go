package domain

// NoteFilter is the set of optional match criteria for listing notes.
// Zero-valued fields are skipped; the rest are combined with logical AND.
type NoteFilter struct {
	// Priority matches exactly when non-empty.
	Priority Priority
	// ColorLabel matches exactly when non-empty.
	ColorLabel string
	// Tags matches notes carrying any of the given tags.
	Tags []string
	// Search matches case-insensitive substrings of title OR content.
	Search string
}

// IsZero reports whether no criteria are set (the filter matches everything).
func (f NoteFilter) IsZero() bool {
	return f.Priority == "" && f.ColorLabel == "" && len(f.Tags) == 0 && f.Search == ""
}

// ListQuery carries the optional list criteria from the HTTP layer.
// Nil Page/Limit fall back to the service's configured defaults; SortBy and
// Order are normalized by NewSortSpec.
type ListQuery struct {
	Page   *int
	Limit  *int
	Filter NoteFilter
	SortBy string
	Order  string
}

// SortField names a note attribute notes can be ordered by.
type SortField string

// Sortable note attributes. SortFieldCreatedAt is the default.
const (
	SortFieldCreatedAt  SortField = "createdAt"
	SortFieldUpdatedAt  SortField = "updatedAt"
	SortFieldTitle      SortField = "title"
	SortFieldPriority   SortField = "priority"
	SortFieldReminderAt SortField = "reminderAt"
)

// SortSpec is a sort key and direction pair for listing notes.
type SortSpec struct {
	Field SortField
	Desc  bool
}

// NewSortSpec builds a SortSpec from raw query values. An unrecognized
// sortBy falls back to createdAt; any order other than "asc" sorts
// descending.
func NewSortSpec(sortBy, order string) SortSpec {
	field := SortField(sortBy)
	switch field {
	case SortFieldCreatedAt, SortFieldUpdatedAt, SortFieldTitle, SortFieldPriority, SortFieldReminderAt:
	default:
		field = SortFieldCreatedAt
	}
	return SortSpec{Field: field, Desc: order != "asc"}
}
