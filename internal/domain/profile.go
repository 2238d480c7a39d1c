package domain

import "context"

// Keys of the persisted profile, stored under ProfileNamespace.
const (
	ProfileNamespace = "little_lemon"

	KeyRegistered = "user_registered"
	KeyFirstName  = "first_name"
	KeyLastName   = "last_name"
	KeyEmail      = "email"
)

// UserProfile is the locally persisted identity of the app user.
// Registered implies the three name fields were written in the same commit.
type UserProfile struct {
	Registered bool
	FirstName  string
	LastName   string
	Email      string
}

// ProfileStore persists a single UserProfile as key-value pairs.
// Save and Clear are atomic: either every key changes or none does.
type ProfileStore interface {
	Save(ctx context.Context, profile UserProfile) error
	Load(ctx context.Context) (UserProfile, error)
	Clear(ctx context.Context) error
}
