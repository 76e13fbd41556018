package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apetrenko/notelink/internal/models"
)

// NoteService defines the interface for note lifecycle operations
// required by the NoteHandler.
type NoteService interface {
	// Create persists a new note with a fresh share token for the owner.
	// The owner id is not validated against an existing user.
	Create(ctx context.Context, title, content string, ownerID int64) (*models.Note, error)
	// List returns every note owned by the given user, empty if none.
	List(ctx context.Context, ownerID int64) ([]models.Note, error)
	// Update overwrites title and content of the note with the given id.
	// Returns models.ErrNoteNotFound if the note does not exist.
	Update(ctx context.Context, id int64, title, content string) (*models.Note, error)
	// Delete permanently removes the note with the given id.
	// Returns models.ErrNoteNotFound if the note does not exist.
	Delete(ctx context.Context, id int64) error
}

// NoteHandler handles HTTP requests for the note lifecycle.
type NoteHandler struct {
	// NoteService performs the underlying note operations.
	NoteService NoteService
}

// CreateNoteRequest represents the JSON payload for note creation.
type CreateNoteRequest struct {
	// Title is the note headline.
	Title string `json:"title"`
	// Content is the note body.
	Content string `json:"content"`
	// UserID is the owner the note is attached to.
	UserID int64 `json:"user_id"`
}

// UpdateNoteRequest represents the JSON payload for note updates.
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteResponse is the note representation returned to clients.
// OwnerID is echoed back only on creation.
type NoteResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ShareToken string `json:"share_token"`
	ShareURL   string `json:"share_url"`
	OwnerID    int64  `json:"owner_id,omitempty"`
}

// newNoteResponse builds the client representation of a note, deriving the
// share URL from the token. includeOwner controls whether owner_id is echoed.
func newNoteResponse(note models.Note, includeOwner bool) NoteResponse {
	resp := NoteResponse{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		ShareToken: note.ShareToken,
		ShareURL:   note.ShareURL(),
	}
	if includeOwner {
		resp.OwnerID = note.OwnerID
	}
	return resp
}

// Create handles POST /notes requests.
// It expects a JSON body with "title", "content" and a non-zero "user_id".
// Creation always succeeds for any owner id; no existence check is made.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.NoteService.Create(r.Context(), req.Title, req.Content, req.UserID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(newNoteResponse(*note, true))
}

// List handles GET /notes/{user_id} requests.
// It returns the notes owned by the user, an empty array if none.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	notes, err := h.NoteService.List(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, newNoteResponse(note, false))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Update handles PUT /notes/{note_id} requests.
// Any caller who knows the note id may update it; share_token and owner_id
// are left untouched. Responds 404 if the note does not exist.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.NoteService.Update(r.Context(), noteID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, models.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(newNoteResponse(*note, false))
}

// Delete handles DELETE /notes/{note_id} requests.
// Responds 404 if the note does not exist.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.NoteService.Delete(r.Context(), noteID); err != nil {
		if errors.Is(err, models.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Note deleted successfully",
	})
}
