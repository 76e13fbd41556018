// Package models defines the core data structures for users and notes.
package models

import "errors"

// ShareURLPrefix is the fixed path prefix a note's share URL is derived from.
const ShareURLPrefix = "/share/"

// Domain errors surfaced by the repositories and mapped to HTTP statuses
// by the handlers.
var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when no user matches a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoteNotFound is returned when no note matches the given id or share token.
	ErrNoteNotFound = errors.New("note not found")
)

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user, assigned by storage.
	ID int64
	// Email is the login identifier, unique across all users.
	Email string
	// Password is the stored credential, compared verbatim at login.
	Password string
}

// Note holds a user's note along with its public share token.
type Note struct {
	// ID is the unique identifier for the note.
	ID int64 `json:"id"`
	// Title is the note headline.
	Title string `json:"title"`
	// Content is the note body.
	Content string `json:"content"`
	// ShareToken is an opaque unique string granting unauthenticated
	// read access to the note. Assigned once at creation, never changed.
	ShareToken string `json:"share_token"`
	// OwnerID references the owning user. Never reassigned.
	OwnerID int64 `json:"owner_id"`
}

// ShareURL derives the public link for the note from its share token.
// It is never persisted.
func (n Note) ShareURL() string {
	return ShareURLPrefix + n.ShareToken
}
