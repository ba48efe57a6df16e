// Package service contains the business logic for the NoteKeep API.
// Services validate inputs, enforce existence, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmalik/notekeep/internal/domain"
	"github.com/jmalik/notekeep/internal/repo"
)

// Field bounds enforced on note bodies.
const (
	titleMinLen   = 3
	titleMaxLen   = 100
	contentMinLen = 10
)

// colorPattern matches a #RGB or #RRGGBB color token.
var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// NoteService implements the note lifecycle: creation, querying with
// filter/sort/pagination, partial updates, status toggles, color labeling,
// and reminders. It holds no mutable state of its own; all state lives in
// the store.
type NoteService struct {
	notes    repo.NoteRepo
	defaults domain.ListDefaults
}

// NewNoteService constructs a NoteService backed by the provided NoteRepo.
// The defaults are applied when a list call omits page or limit.
func NewNoteService(notes repo.NoteRepo, defaults domain.ListDefaults) *NoteService {
	return &NoteService{notes: notes, defaults: defaults}
}

// Create validates and persists a new note. Title, content, and owner are
// required; priority defaults to low when omitted.
// Returns domain.ErrValidation if input violates business rules.
func (s *NoteService) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	note.Title = strings.TrimSpace(note.Title)
	note.Content = strings.TrimSpace(note.Content)

	if err := validateTitle(note.Title); err != nil {
		return domain.Note{}, err
	}
	if err := validateContent(note.Content); err != nil {
		return domain.Note{}, err
	}
	if note.Owner == "" {
		return domain.Note{}, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	if note.Priority == "" {
		note.Priority = domain.PriorityLow
	}
	if !note.Priority.Valid() {
		return domain.Note{}, fmt.Errorf("%w: priority must be low, medium, or high", domain.ErrValidation)
	}

	created, err := s.notes.Create(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	return created, nil
}

// List returns one page of notes matching the query's filter, plus the
// pagination metadata computed from an independent count of all matches.
// Returns domain.ErrInvalidArgument when page or limit is out of range.
func (s *NoteService) List(ctx context.Context, q domain.ListQuery) ([]domain.Note, domain.Pagination, error) {
	p := domain.NewPageRequest(q.Page, q.Limit, s.defaults)
	if p.Page < 0 {
		return nil, domain.Pagination{}, fmt.Errorf("%w: page number must be non-negative", domain.ErrInvalidArgument)
	}
	if p.Limit < 0 || p.Limit > domain.MaxPageLimit {
		return nil, domain.Pagination{}, fmt.Errorf("%w: limit must be between 0 and %d", domain.ErrInvalidArgument, domain.MaxPageLimit)
	}
	if q.Filter.Priority != "" && !q.Filter.Priority.Valid() {
		return nil, domain.Pagination{}, fmt.Errorf("%w: priority must be low, medium, or high", domain.ErrInvalidArgument)
	}

	sort := domain.NewSortSpec(q.SortBy, q.Order)

	notes, err := s.notes.List(ctx, q.Filter, sort, p.Skip(), p.Limit)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("service.NoteService.List: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}

	// The count must use the filter, not the page window, so totalPages
	// reflects the whole result set.
	total, err := s.notes.Count(ctx, q.Filter)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("service.NoteService.List: %w", err)
	}

	return notes, domain.NewPagination(p, total), nil
}

// GetByID returns a single note by id.
// Returns domain.ErrInvalidArgument for a malformed id (no store call is
// made), domain.ErrNotFound when no note matches.
func (s *NoteService) GetByID(ctx context.Context, id string) (domain.Note, error) {
	if err := checkNoteID(id); err != nil {
		return domain.Note{}, err
	}
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.GetByID: %w", err)
	}
	return note, nil
}

// Update applies a partial-field update to an existing note.
// Returns domain.ErrValidation for an empty patch or out-of-bounds fields,
// domain.ErrNotFound when the update matched nothing.
func (s *NoteService) Update(ctx context.Context, id string, patch domain.NotePatch) (domain.Note, error) {
	if err := checkNoteID(id); err != nil {
		return domain.Note{}, err
	}
	if err := validatePatch(&patch); err != nil {
		return domain.Note{}, err
	}
	updated, err := s.notes.Update(ctx, id, patch)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a note permanently.
// Returns domain.ErrNotFound when nothing was deleted.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := checkNoteID(id); err != nil {
		return err
	}
	if _, err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.NoteService.Delete: %w", err)
	}
	return nil
}

// TogglePin flips the pinned flag of a note and returns the updated note.
func (s *NoteService) TogglePin(ctx context.Context, id string) (domain.Note, error) {
	return s.toggle(ctx, id, "service.NoteService.TogglePin", domain.TogglePinned)
}

// ToggleArchive flips the archived flag of a note and returns the updated note.
func (s *NoteService) ToggleArchive(ctx context.Context, id string) (domain.Note, error) {
	return s.toggle(ctx, id, "service.NoteService.ToggleArchive", domain.ToggleArchived)
}

// ToggleTrash flips the trashed flag of a note and returns the updated note.
func (s *NoteService) ToggleTrash(ctx context.Context, id string) (domain.Note, error) {
	return s.toggle(ctx, id, "service.NoteService.ToggleTrash", domain.ToggleTrashed)
}

// SoftDelete marks a note as trashed without removing it. Unlike ToggleTrash
// it is not a flip: soft-deleting an already-trashed note leaves it trashed.
func (s *NoteService) SoftDelete(ctx context.Context, id string) (domain.Note, error) {
	if err := checkNoteID(id); err != nil {
		return domain.Note{}, err
	}
	trashed := true
	updated, err := s.notes.Update(ctx, id, domain.NotePatch{IsTrashed: &trashed})
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.SoftDelete: %w", err)
	}
	return updated, nil
}

// ChangeColor sets the color label of a note. The prior value is irrelevant,
// so this is a single update with no read step.
// Returns domain.ErrValidation for a malformed color token,
// domain.ErrNotFound when the update matched nothing.
func (s *NoteService) ChangeColor(ctx context.Context, id, colorLabel string) (domain.Note, error) {
	if err := checkNoteID(id); err != nil {
		return domain.Note{}, err
	}
	if !colorPattern.MatchString(colorLabel) {
		return domain.Note{}, fmt.Errorf("%w: colorLabel must be a hex color like #RRGGBB", domain.ErrValidation)
	}
	updated, err := s.notes.Update(ctx, id, domain.NotePatch{ColorLabel: &colorLabel})
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.ChangeColor: %w", err)
	}
	return updated, nil
}

// SetReminder stores a reminder timestamp on a note. Delivery of reminders
// is out of scope; only the timestamp is kept.
// Returns domain.ErrNotFound when the update matched nothing.
func (s *NoteService) SetReminder(ctx context.Context, id string, at time.Time) (domain.Note, error) {
	if err := checkNoteID(id); err != nil {
		return domain.Note{}, err
	}
	if at.IsZero() {
		return domain.Note{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	updated, err := s.notes.Update(ctx, id, domain.NotePatch{ReminderAt: &at})
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.SetReminder: %w", err)
	}
	return updated, nil
}

// toggle is the shared path for the three boolean flags. The negation runs
// inside a single store update, so two concurrent toggles on the same id
// serialize rather than reading the same pre-state and losing one flip.
func (s *NoteService) toggle(ctx context.Context, id, op string, flag domain.ToggleField) (domain.Note, error) {
	if err := checkNoteID(id); err != nil {
		return domain.Note{}, err
	}
	updated, err := s.notes.ToggleFlag(ctx, id, flag)
	if err != nil {
		return domain.Note{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// checkNoteID rejects ids that do not match the identifier format before
// any store call is made.
func checkNoteID(id string) error {
	if !domain.IsValidNoteID(id) {
		return fmt.Errorf("%w: invalid note id", domain.ErrInvalidArgument)
	}
	return nil
}

// validateTitle enforces the title bounds shared by Create and Update.
func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(title) < titleMinLen || len(title) > titleMaxLen {
		return fmt.Errorf("%w: title must be between %d and %d characters", domain.ErrValidation, titleMinLen, titleMaxLen)
	}
	return nil
}

// validateContent enforces the content bounds shared by Create and Update.
func validateContent(content string) error {
	if content == "" {
		return fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if len(content) < contentMinLen {
		return fmt.Errorf("%w: content must be at least %d characters", domain.ErrValidation, contentMinLen)
	}
	return nil
}

// validatePatch enforces business rules on the fields an update supplies.
// An empty patch is rejected so an update can never silently do nothing.
func validatePatch(patch *domain.NotePatch) error {
	if patch.IsZero() {
		return fmt.Errorf("%w: at least one field must be provided", domain.ErrValidation)
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if err := validateTitle(trimmed); err != nil {
			return err
		}
		patch.Title = &trimmed
	}
	if patch.Content != nil {
		trimmed := strings.TrimSpace(*patch.Content)
		if err := validateContent(trimmed); err != nil {
			return err
		}
		patch.Content = &trimmed
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return fmt.Errorf("%w: priority must be low, medium, or high", domain.ErrValidation)
	}
	return nil
}
