package identity

import (
	"context"

	"github.com/google/uuid"
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

type IdentityUsecase interface {
	// Directory operations
	CreateProfile(ctx context.Context, cmd CreateProfileCommand) (*models.Profile, error)

	// GetProfile is a pure lookup: an unknown uid yields (nil, nil).
	GetProfile(ctx context.Context, uid uuid.UUID) (*models.Profile, error)

	UpdateProfile(ctx context.Context, uid uuid.UUID, cmd UpdateProfileCommand) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]*models.Profile, error)

	// Session register. The mock accepts any password.
	SignUp(ctx context.Context, cmd SignUpCommand) (*models.Profile, error)
	SignIn(ctx context.Context, cmd SignInCommand) (*models.Profile, error)
	SignInWithGoogle(ctx context.Context) (*models.Profile, error)
	SignInWithApple(ctx context.Context) (*models.Profile, error)
	SignOut(ctx context.Context) error
	CurrentUser() *models.Profile

	// Subscribe delivers the current session state immediately, then again
	// on every sign-in/sign-out. Each subscriber gets its own cancel.
	Subscribe(fn func(*models.Profile)) func()
}
