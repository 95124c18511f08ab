package identity

import (
	"context"

	"github.com/google/uuid"
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetProfileByID(ctx context.Context, uid uuid.UUID) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)

	// UpdateProfile applies a shallow merge: set fields overwrite, nil
	// fields persist. Returns the post-merge profile.
	UpdateProfile(ctx context.Context, uid uuid.UUID, cmd UpdateProfileCommand) (*models.Profile, error)

	// ListProfiles returns a snapshot copy in insertion order.
	ListProfiles(ctx context.Context) ([]*models.Profile, error)

	// Reset drops all profiles. Test-harness only.
	Reset(ctx context.Context) error
}
