// Package handler implements the HTTP handlers for the NoteKeep API.
// All handlers are methods on Server. Methods are split into files by
// concern (health.go, note.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmalik/notekeep/internal/domain"
)

// NoteServicer defines the business operations the note handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type NoteServicer interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.Note, domain.Pagination, error)
	GetByID(ctx context.Context, id string) (domain.Note, error)
	Update(ctx context.Context, id string, patch domain.NotePatch) (domain.Note, error)
	Delete(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (domain.Note, error)
	ToggleArchive(ctx context.Context, id string) (domain.Note, error)
	ToggleTrash(ctx context.Context, id string) (domain.Note, error)
	SoftDelete(ctx context.Context, id string) (domain.Note, error)
	ChangeColor(ctx context.Context, id, colorLabel string) (domain.Note, error)
	SetReminder(ctx context.Context, id string, at time.Time) (domain.Note, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	notes NoteServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(notes NoteServicer) *Server {
	return &Server{notes: notes}
}

// Routes returns the chi router for the full API surface.
// Mount it at the application root; paths here are absolute.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1/notes", func(r chi.Router) {
		r.Post("/", s.handleCreateNote)
		r.Get("/", s.handleListNotes)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetNote)
			r.Put("/", s.handleUpdateNote)
			r.Delete("/", s.handleDeleteNote)
			r.Delete("/soft-delete", s.handleSoftDeleteNote)
			r.Patch("/pin", s.handleTogglePin)
			r.Patch("/archive", s.handleToggleArchive)
			r.Patch("/trash", s.handleToggleTrash)
			r.Patch("/color", s.handleChangeColor)
			r.Patch("/reminder", s.handleSetReminder)
		})
	})

	return r
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already written; nothing left to do but log.
		slog.Error("encode response", "error", err)
	}
}
