// Package entity contains the core business objects of the navigation domain,
// each representing a unique, identifiable concept within a marketplace.
package entity

import (
	"github.com/google/uuid"
)

// User is a read-only view of an account owned by the account service.
// Navigation only needs to confirm the account exists before recording locations for it.
type User struct {
	ID       uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username string    // The login name shown in session listings.
	Role     Role      // The account role.
}
