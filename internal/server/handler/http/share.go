package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apetrenko/notelink/internal/models"
)

// ShareService defines the interface for public note access
// required by the ShareHandler.
type ShareService interface {
	// GetShared fetches a note by its share token.
	// Returns models.ErrNoteNotFound if no note carries the token.
	GetShared(ctx context.Context, token string) (*models.Note, error)
}

// ShareHandler handles unauthenticated note reads via share tokens.
type ShareHandler struct {
	// ShareService performs the token lookup.
	ShareService ShareService
}

// SharedNoteResponse is the public representation of a shared note.
// Only title and content are exposed; no id, owner or token is echoed back.
type SharedNoteResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GetShared handles GET /share/{share_token} requests.
// The token itself is the full authorization artifact; no caller identity
// is required. Responds 404 if no note carries the token.
func (h *ShareHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "share_token")

	note, err := h.ShareService.GetShared(r.Context(), token)
	if err != nil {
		if errors.Is(err, models.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(SharedNoteResponse{
		Title:   note.Title,
		Content: note.Content,
	})
}
