package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/apetrenko/notelink/internal/metrics"
	"github.com/apetrenko/notelink/internal/models"
)

// NoteRepository defines the persistence operations needed by the NoteService.
type NoteRepository interface {
	// CreateNote inserts the note and returns the id assigned by storage.
	CreateNote(ctx context.Context, note models.Note) (int64, error)
	// ListByOwner retrieves all notes belonging to the specified user.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)
	// UpdateNote overwrites title and content of the note with the given id.
	// Returns models.ErrNoteNotFound if the note does not exist.
	UpdateNote(ctx context.Context, id int64, title, content string) (*models.Note, error)
	// DeleteNote permanently removes the note with the given id.
	// Returns models.ErrNoteNotFound if the note does not exist.
	DeleteNote(ctx context.Context, id int64) error
	// GetByShareToken fetches a single note by its share token.
	// Returns models.ErrNoteNotFound if no note carries the token.
	GetByShareToken(ctx context.Context, token string) (*models.Note, error)
}

// NoteService implements the note lifecycle and public sharing logic.
type NoteService struct {
	// repo is the underlying persistence repository.
	repo NoteRepository
}

// NewNoteService constructs a NoteService with the provided NoteRepository.
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create persists a new note for the given owner with a freshly generated
// share token. The owner id is not validated against an existing user.
// The token is generated exactly once here and never regenerated.
func (s *NoteService) Create(ctx context.Context, title, content string, ownerID int64) (*models.Note, error) {
	note := models.Note{
		Title:      title,
		Content:    content,
		ShareToken: uuid.NewString(),
		OwnerID:    ownerID,
	}

	id, err := s.repo.CreateNote(ctx, note)
	if err != nil {
		return nil, err
	}
	note.ID = id

	metrics.NotesCreated.Inc()
	return &note, nil
}

// List returns every note owned by the given user, empty if none.
func (s *NoteService) List(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update overwrites title and content of the note with the given id and
// returns the updated note. share_token and owner_id are left untouched.
func (s *NoteService) Update(ctx context.Context, id int64, title, content string) (*models.Note, error) {
	return s.repo.UpdateNote(ctx, id, title, content)
}

// Delete permanently removes the note with the given id.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteNote(ctx, id)
}

// GetShared fetches a note by its share token. This is the only read path
// that requires no caller identity; the token is the authorization artifact.
func (s *NoteService) GetShared(ctx context.Context, token string) (*models.Note, error) {
	note, err := s.repo.GetByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}

	metrics.SharedNoteViews.Inc()
	return note, nil
}
