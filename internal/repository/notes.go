package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/apetrenko/notelink/internal/models"
)

// PostgresNoteRepository implements note persistence against a PostgreSQL database.
type PostgresNoteRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresNoteRepository(db *sql.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{DB: db}
}

// CreateNote inserts a new note and returns the id assigned by storage.
// The share token must already be set on the note; its uniqueness is
// guaranteed by the notes.share_token constraint.
func (r *PostgresNoteRepository) CreateNote(ctx context.Context, note models.Note) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO notes (title, content, share_token, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, note.Title, note.Content, note.ShareToken, note.OwnerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create note: %w", err)
	}
	return id, nil
}

// ListByOwner fetches all notes whose owner_id matches the given user.
// Returns an empty slice when the user owns no notes.
func (r *PostgresNoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	queryBuilder := squirrel.
		Select("id",
			"title",
			"content",
			"share_token",
			"owner_id").
		From("notes").
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Content, &note.ShareToken, &note.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return notes, nil
}

// UpdateNote overwrites title and content of the note with the given id,
// leaving share_token and owner_id untouched, and returns the updated note.
// Returns models.ErrNoteNotFound if no note with that id exists.
func (r *PostgresNoteRepository) UpdateNote(ctx context.Context, id int64, title, content string) (*models.Note, error) {
	var note models.Note
	err := r.DB.QueryRowContext(ctx, `
		UPDATE notes SET title = $1, content = $2 WHERE id = $3
		RETURNING id, title, content, share_token, owner_id
	`, title, content, id).Scan(&note.ID, &note.Title, &note.Content, &note.ShareToken, &note.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return &note, nil
}

// DeleteNote permanently removes the note with the given id.
// Returns models.ErrNoteNotFound if no note with that id exists.
func (r *PostgresNoteRepository) DeleteNote(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrNoteNotFound
	}
	return nil
}

// GetByShareToken retrieves a single note by its share token.
// Returns models.ErrNoteNotFound if no note carries that token.
func (r *PostgresNoteRepository) GetByShareToken(ctx context.Context, token string) (*models.Note, error) {
	var note models.Note
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, content, share_token, owner_id FROM notes WHERE share_token = $1
	`, token).Scan(&note.ID, &note.Title, &note.Content, &note.ShareToken, &note.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNoteNotFound
		}
		return nil, fmt.Errorf("get by share token: %w", err)
	}
	return &note, nil
}
