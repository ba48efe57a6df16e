// Package repo contains all database access logic for the NoteKeep API.
// No business logic lives here, only SQL and type mapping. The repo trusts
// its callers: ownership and id-format rules are enforced by the service.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jmalik/notekeep/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NoteRepo defines the persistence operations for Notes: the thin gateway
// over the notes table. The service layer depends on this interface, not
// the concrete Postgres implementation, which allows the service to be
// unit-tested with a mock.
type NoteRepo interface {
	// Create inserts a new note and returns the persisted record. A blank
	// note ID is replaced with a generated one before the insert.
	Create(ctx context.Context, note domain.Note) (domain.Note, error)

	// GetByID retrieves a single note by its id.
	// Returns domain.ErrNotFound if no note with that id exists.
	GetByID(ctx context.Context, id string) (domain.Note, error)

	// List returns at most limit notes matching the filter, ordered by the
	// sort spec, after skipping the first skip matches. An empty result is
	// a valid response, not an error.
	List(ctx context.Context, filter domain.NoteFilter, sort domain.SortSpec, skip, limit int) ([]domain.Note, error)

	// Count returns the total number of notes matching the filter,
	// independent of any page window.
	Count(ctx context.Context, filter domain.NoteFilter) (int64, error)

	// Update merges the non-nil patch fields into the stored note and
	// returns the record as it stands after the update.
	// Returns domain.ErrNotFound if no note with that id exists.
	Update(ctx context.Context, id string, patch domain.NotePatch) (domain.Note, error)

	// ToggleFlag negates one boolean status flag in a single atomic update
	// and returns the post-update record. No read step, so concurrent
	// toggles serialize in the database instead of racing.
	// Returns domain.ErrNotFound if no note with that id exists.
	ToggleFlag(ctx context.Context, id string, flag domain.ToggleField) (domain.Note, error)

	// Delete removes a note by id and returns its last known value.
	// Returns domain.ErrNotFound if no note with that id exists.
	Delete(ctx context.Context, id string) (domain.Note, error)
}

// noteColumns is the column list shared by every query that scans a full note.
const noteColumns = `id, title, content, tags, priority, color_label, reminder_at,
	is_pinned, is_archived, is_trashed, owner, created_at, updated_at`

// sortColumns maps domain sort fields to their SQL columns. List falls back
// to created_at for anything not in this map, so raw caller input can never
// reach the ORDER BY clause.
var sortColumns = map[domain.SortField]string{
	domain.SortFieldCreatedAt:  "created_at",
	domain.SortFieldUpdatedAt:  "updated_at",
	domain.SortFieldTitle:      "title",
	domain.SortFieldPriority:   "priority",
	domain.SortFieldReminderAt: "reminder_at",
}

// pgNoteRepo is the Postgres implementation of NoteRepo.
type pgNoteRepo struct {
	db db
}

// NewNoteRepo constructs a NoteRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewNoteRepo(db db) NoteRepo {
	return &pgNoteRepo{db: db}
}

// Create inserts a new note row and returns the full persisted record.
// The id is assigned here; created_at and updated_at come from the database.
func (r *pgNoteRepo) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	const q = `
		INSERT INTO notes (id, title, content, tags, priority, color_label, reminder_at, owner)
		VALUES (@id, @title, @content, @tags, @priority, @color_label, @reminder_at, @owner)
		RETURNING ` + noteColumns

	if note.ID == "" {
		note.ID = domain.NewNoteID()
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	args := pgx.NamedArgs{
		"id":          note.ID,
		"title":       note.Title,
		"content":     note.Content,
		"tags":        note.Tags,
		"priority":    string(note.Priority),
		"color_label": nullableText(note.ColorLabel),
		"reminder_at": note.ReminderAt, // nil becomes NULL
		"owner":       note.Owner,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, wrapStorage("repo.NoteRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves a note by primary key.
func (r *pgNoteRepo) GetByID(ctx context.Context, id string) (domain.Note, error) {
	const q = `SELECT ` + noteColumns + ` FROM notes WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, wrapStorage("repo.NoteRepo.GetByID", err)
	}
	return result, nil
}

// List returns one window of notes matching the filter.
func (r *pgNoteRepo) List(ctx context.Context, filter domain.NoteFilter, sort domain.SortSpec, skip, limit int) ([]domain.Note, error) {
	args := pgx.NamedArgs{"skip": skip, "limit": limit}

	col, ok := sortColumns[sort.Field]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	q := `SELECT ` + noteColumns + ` FROM notes` + filterWhere(filter, args) +
		` ORDER BY ` + col + ` ` + dir + `, id ` + dir +
		` OFFSET @skip LIMIT @limit`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, wrapStorage("repo.NoteRepo.List", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, wrapStorage("repo.NoteRepo.List: scan", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage("repo.NoteRepo.List: rows", err)
	}

	return notes, nil
}

// Count returns the number of notes matching the filter.
func (r *pgNoteRepo) Count(ctx context.Context, filter domain.NoteFilter) (int64, error) {
	args := pgx.NamedArgs{}
	q := `SELECT count(*) FROM notes` + filterWhere(filter, args)

	var total int64
	if err := r.db.QueryRow(ctx, q, args).Scan(&total); err != nil {
		return 0, wrapStorage("repo.NoteRepo.Count", err)
	}
	return total, nil
}

// Update applies a partial-field merge and returns the post-update record.
// Only the non-nil patch fields appear in the SET clause; updated_at is
// always advanced.
func (r *pgNoteRepo) Update(ctx context.Context, id string, patch domain.NotePatch) (domain.Note, error) {
	set := []string{"updated_at = now()"}
	args := pgx.NamedArgs{"id": id}

	if patch.Title != nil {
		set = append(set, "title = @title")
		args["title"] = *patch.Title
	}
	if patch.Content != nil {
		set = append(set, "content = @content")
		args["content"] = *patch.Content
	}
	if patch.Tags != nil {
		set = append(set, "tags = @tags")
		args["tags"] = *patch.Tags
	}
	if patch.Priority != nil {
		set = append(set, "priority = @priority")
		args["priority"] = string(*patch.Priority)
	}
	if patch.ColorLabel != nil {
		set = append(set, "color_label = @color_label")
		args["color_label"] = *patch.ColorLabel
	}
	if patch.ReminderAt != nil {
		set = append(set, "reminder_at = @reminder_at")
		args["reminder_at"] = *patch.ReminderAt
	}
	if patch.IsPinned != nil {
		set = append(set, "is_pinned = @is_pinned")
		args["is_pinned"] = *patch.IsPinned
	}
	if patch.IsArchived != nil {
		set = append(set, "is_archived = @is_archived")
		args["is_archived"] = *patch.IsArchived
	}
	if patch.IsTrashed != nil {
		set = append(set, "is_trashed = @is_trashed")
		args["is_trashed"] = *patch.IsTrashed
	}

	q := `UPDATE notes SET ` + strings.Join(set, ", ") +
		` WHERE id = @id RETURNING ` + noteColumns

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, wrapStorage("repo.NoteRepo.Update", err)
	}
	return result, nil
}

// toggleColumns maps flippable flags to their columns. ToggleFlag rejects
// anything not in this map, so raw caller input can never reach the SET
// clause.
var toggleColumns = map[domain.ToggleField]string{
	domain.TogglePinned:   "is_pinned",
	domain.ToggleArchived: "is_archived",
	domain.ToggleTrashed:  "is_trashed",
}

// ToggleFlag flips one status flag with a single UPDATE.
func (r *pgNoteRepo) ToggleFlag(ctx context.Context, id string, flag domain.ToggleField) (domain.Note, error) {
	col, ok := toggleColumns[flag]
	if !ok {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.ToggleFlag: unknown flag %q", flag)
	}

	q := `UPDATE notes SET ` + col + ` = NOT ` + col + `, updated_at = now()
		WHERE id = @id RETURNING ` + noteColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, wrapStorage("repo.NoteRepo.ToggleFlag", err)
	}
	return result, nil
}

// Delete removes a note by primary key and returns the deleted row.
func (r *pgNoteRepo) Delete(ctx context.Context, id string) (domain.Note, error) {
	const q = `DELETE FROM notes WHERE id = @id RETURNING ` + noteColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, wrapStorage("repo.NoteRepo.Delete", err)
	}
	return result, nil
}

// filterWhere builds the WHERE clause for a NoteFilter, registering the
// clause arguments in args. Returns "" when the filter is empty so List and
// Count share one builder and always agree on what "matching" means.
func filterWhere(f domain.NoteFilter, args pgx.NamedArgs) string {
	var where []string

	if f.Priority != "" {
		where = append(where, "priority = @priority")
		args["priority"] = string(f.Priority)
	}
	if f.ColorLabel != "" {
		where = append(where, "color_label = @color_label")
		args["color_label"] = f.ColorLabel
	}
	if len(f.Tags) > 0 {
		// && is the array-overlap operator: any shared tag matches.
		where = append(where, "tags && @filter_tags")
		args["filter_tags"] = f.Tags
	}
	if f.Search != "" {
		where = append(where, "(title ILIKE @search OR content ILIKE @search)")
		args["search"] = "%" + escapeLike(f.Search) + "%"
	}

	if len(where) == 0 {
		return ""
	}
	return ` WHERE ` + strings.Join(where, " AND ")
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied search term
// so it matches as a literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanNote to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanNote maps a single database row into a domain.Note.
// It handles the nullable color_label and reminder_at conversions.
func scanNote(s scanner) (domain.Note, error) {
	var (
		n          domain.Note
		priority   string
		colorLabel pgtype.Text
		reminderAt pgtype.Timestamptz
	)

	err := s.Scan(&n.ID, &n.Title, &n.Content, &n.Tags, &priority, &colorLabel,
		&reminderAt, &n.IsPinned, &n.IsArchived, &n.IsTrashed, &n.Owner,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Note{}, domain.ErrNotFound
		}
		return domain.Note{}, err
	}

	n.Priority = domain.Priority(priority)
	if colorLabel.Valid {
		n.ColorLabel = colorLabel.String
	}
	if reminderAt.Valid {
		at := reminderAt.Time
		n.ReminderAt = &at
	}

	return n, nil
}

// nullableText maps an empty string to NULL for optional text columns.
func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// wrapStorage adds the operation prefix and tags anything that is not a
// domain sentinel with domain.ErrStorage.
func wrapStorage(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
