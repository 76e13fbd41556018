// Package repository provides persistence implementations for the user and
// note services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/apetrenko/notelink/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = pq.ErrorCode("23505")

// PostgresUserRepository implements user persistence against a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// EmailExists checks whether a user with the specified email exists.
// It returns true if the user exists, false otherwise.
func (r *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a new user and returns the id assigned by storage.
// The email uniqueness constraint is the source of truth: a violation is
// returned as models.ErrDuplicateEmail even when a concurrent insert won
// the race after a passing pre-check.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, email, password string) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id`,
		email, password,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, models.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetByCredentials looks up a user by exact email and password match and
// returns the user id. Returns models.ErrInvalidCredentials if no user matches.
func (r *PostgresUserRepository) GetByCredentials(ctx context.Context, email, password string) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id FROM users WHERE email = $1 AND password = $2`,
		email, password,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.ErrInvalidCredentials
		}
		return 0, fmt.Errorf("get by credentials: %w", err)
	}
	return id, nil
}
