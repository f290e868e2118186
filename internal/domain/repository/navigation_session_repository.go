package repository

import (
	"context"
	"time"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for navigation session persistence.
var (
	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("navigation session not found")
	// ErrSessionVersionConflict is returned when a session changed since it was read.
	ErrSessionVersionConflict = errors.New("navigation session version conflict")
	// ErrActiveSessionExists is returned when a user would end up with two active sessions.
	ErrActiveSessionExists = errors.New("user already has an active navigation session")
)

// NavigationSessionRepository defines the persistence operations for navigation sessions.
type NavigationSessionRepository interface {
	// CreateSession persists a new session. Version starts at 1.
	CreateSession(ctx context.Context, session *entity.NavigationSession) error

	// FindSessionByID retrieves a session by its unique ID from the primary.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.NavigationSession, error)

	// FindActiveSessionByUser retrieves the active session of a user.
	FindActiveSessionByUser(ctx context.Context, userID uuid.UUID) (*entity.NavigationSession, error)

	// UpdateSession saves the session if its Version still matches the stored one, then bumps Version.
	UpdateSession(ctx context.Context, session *entity.NavigationSession) error

	// CancelActiveSessionsByUser cancels any active session of the user and returns how many were cancelled.
	CancelActiveSessionsByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}
