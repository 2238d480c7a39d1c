package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/little-lemon/internal/domain"
)

// Messages shown to the user after a registration attempt.
const (
	MsgRegistrationFailed    = "Registration unsuccessful. Please enter all data."
	MsgRegistrationSucceeded = "Registration successful!"
)

// Screens the app opens on launch.
const (
	DestinationOnboarding = "Onboarding"
	DestinationHome       = "Home"
)

// ProfileService handles onboarding registration and logout.
type ProfileService struct {
	profiles domain.ProfileStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles domain.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Register validates the three fields and stores them together with the
// registered flag. Nothing is written if any field is blank.
func (s *ProfileService) Register(ctx context.Context, firstName, lastName, email string) (domain.UserProfile, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" || lastName == "" || email == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgRegistrationFailed)
	}

	profile := domain.UserProfile{
		Registered: true,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// Profile returns the stored profile, or defaults if nobody registered.
func (s *ProfileService) Profile(ctx context.Context) (domain.UserProfile, error) {
	profile, err := s.profiles.Load(ctx)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// Logout wipes the stored profile.
func (s *ProfileService) Logout(ctx context.Context) error {
	if err := s.profiles.Clear(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

// StartDestination picks the first screen: Home for registered users,
// Onboarding otherwise.
func (s *ProfileService) StartDestination(ctx context.Context) (string, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return "", err
	}
	if profile.Registered {
		return DestinationHome, nil
	}
	return DestinationOnboarding, nil
}
