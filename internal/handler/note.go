package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmalik/notekeep/internal/domain"
)

// createNoteRequest is the JSON body for POST /api/v1/notes.
// Field names are the API's camelCase wire contract.
type createNoteRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Owner      string     `json:"owner"`
	Tags       []string   `json:"tags"`
	Priority   string     `json:"priority"`
	ColorLabel string     `json:"colorLabel"`
	ReminderAt *time.Time `json:"reminderAt"`
}

// updateNoteRequest is the JSON body for PUT /api/v1/notes/{id}.
// Every field is optional; absent fields are left untouched.
type updateNoteRequest struct {
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	Tags       *[]string  `json:"tags"`
	Priority   *string    `json:"priority"`
	ColorLabel *string    `json:"colorLabel"`
	ReminderAt *time.Time `json:"reminderAt"`
	IsPinned   *bool      `json:"isPinned"`
	IsArchived *bool      `json:"isArchived"`
	IsTrashed  *bool      `json:"isTrashed"`
}

// changeColorRequest is the JSON body for PATCH /api/v1/notes/{id}/color.
type changeColorRequest struct {
	ColorLabel string `json:"colorLabel"`
}

// setReminderRequest is the JSON body for PATCH /api/v1/notes/{id}/reminder.
type setReminderRequest struct {
	Date time.Time `json:"date"`
}

// listNotesResponse pairs one page of notes with its pagination metadata.
type listNotesResponse struct {
	Data       []domain.Note     `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// handleCreateNote handles POST /api/v1/notes.
func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "invalid request body")
		return
	}

	created, err := s.notes.Create(r.Context(), domain.Note{
		Title:      req.Title,
		Content:    req.Content,
		Owner:      req.Owner,
		Tags:       req.Tags,
		Priority:   domain.Priority(req.Priority),
		ColorLabel: req.ColorLabel,
		ReminderAt: req.ReminderAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// handleListNotes handles GET /api/v1/notes.
// Query parameters: page, limit, search, priority, tags (comma-separated),
// colorLabel, sortBy, order.
func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()

	page, err := intParam(qv.Get("page"))
	if err != nil {
		badRequest(w, "page must be an integer")
		return
	}
	limit, err := intParam(qv.Get("limit"))
	if err != nil {
		badRequest(w, "limit must be an integer")
		return
	}

	q := domain.ListQuery{
		Page:  page,
		Limit: limit,
		Filter: domain.NoteFilter{
			Priority:   domain.Priority(qv.Get("priority")),
			ColorLabel: qv.Get("colorLabel"),
			Tags:       splitTags(qv.Get("tags")),
			Search:     qv.Get("search"),
		},
		SortBy: qv.Get("sortBy"),
		Order:  qv.Get("order"),
	}

	notes, pagination, err := s.notes.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, listNotesResponse{Data: notes, Pagination: pagination})
}

// handleGetNote handles GET /api/v1/notes/{id}.
func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.notes.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// handleUpdateNote handles PUT /api/v1/notes/{id}.
func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "invalid request body")
		return
	}

	patch := domain.NotePatch{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		ColorLabel: req.ColorLabel,
		ReminderAt: req.ReminderAt,
		IsPinned:   req.IsPinned,
		IsArchived: req.IsArchived,
		IsTrashed:  req.IsTrashed,
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		patch.Priority = &p
	}

	updated, err := s.notes.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleDeleteNote handles DELETE /api/v1/notes/{id}.
func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.notes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSoftDeleteNote handles DELETE /api/v1/notes/{id}/soft-delete.
func (s *Server) handleSoftDeleteNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.notes.SoftDelete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// handleTogglePin handles PATCH /api/v1/notes/{id}/pin.
func (s *Server) handleTogglePin(w http.ResponseWriter, r *http.Request) {
	s.respondToggle(w, r, s.notes.TogglePin)
}

// handleToggleArchive handles PATCH /api/v1/notes/{id}/archive.
func (s *Server) handleToggleArchive(w http.ResponseWriter, r *http.Request) {
	s.respondToggle(w, r, s.notes.ToggleArchive)
}

// handleToggleTrash handles PATCH /api/v1/notes/{id}/trash.
func (s *Server) handleToggleTrash(w http.ResponseWriter, r *http.Request) {
	s.respondToggle(w, r, s.notes.ToggleTrash)
}

// handleChangeColor handles PATCH /api/v1/notes/{id}/color.
func (s *Server) handleChangeColor(w http.ResponseWriter, r *http.Request) {
	var req changeColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "invalid request body")
		return
	}

	note, err := s.notes.ChangeColor(r.Context(), chi.URLParam(r, "id"), req.ColorLabel)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// handleSetReminder handles PATCH /api/v1/notes/{id}/reminder.
func (s *Server) handleSetReminder(w http.ResponseWriter, r *http.Request) {
	var req setReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "invalid request body")
		return
	}

	note, err := s.notes.SetReminder(r.Context(), chi.URLParam(r, "id"), req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// respondToggle runs one of the three toggle operations against the path id
// and writes the updated note.
func (s *Server) respondToggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (domain.Note, error)) {
	note, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// intParam parses an optional integer query parameter.
// Empty input yields a nil pointer so the service can apply its defaults.
func intParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// splitTags splits a comma-separated tags parameter into a trimmed slice,
// ignoring empty entries.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
