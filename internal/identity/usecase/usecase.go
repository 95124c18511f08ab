package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/observer"
)

// Demo accounts the social sign-in buttons resolve to.
const (
	GoogleDemoEmail = "founder@test.com"
	AppleDemoEmail  = "funder@test.com"
)

// IdentityUsecase implements the profile directory and the session
// register. The session is a single slot: at most one authenticated
// identity per process, observed by any number of subscribers.
type IdentityUsecase struct {
	repo   identity.ProfileRepository
	logger logger.Logger

	mu       sync.Mutex
	current  *models.Profile
	watchers *observer.Registry[*models.Profile]
}

var _ identity.IdentityUsecase = (*IdentityUsecase)(nil)

func NewIdentityUsecase(repo identity.ProfileRepository, logger logger.Logger) *IdentityUsecase {
	return &IdentityUsecase{
		repo:     repo,
		logger:   logger,
		watchers: observer.NewRegistry[*models.Profile](),
	}
}

func (uc *IdentityUsecase) CreateProfile(ctx context.Context, cmd identity.CreateProfileCommand) (*models.Profile, error) {
	if strings.TrimSpace(cmd.Email) == "" {
		return nil, errors.ErrInvalidEmail
	}
	if !cmd.Role.Valid() {
		return nil, errors.ErrInvalidRole
	}

	if taken, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("store error checking email", "err", err)
		return nil, errors.Internal("internal error")
	} else if taken {
		return nil, errors.ErrEmailTaken
	}

	uid := uuid.New()
	p := &models.Profile{
		UID:      uid,
		Email:    cmd.Email,
		Role:     cmd.Role,
		FullName: cmd.FullName,
		PhotoURL: cmd.PhotoURL,

		StartupName:  cmd.StartupName,
		OneLinePitch: cmd.OneLinePitch,
		Industry:     cmd.Industry,
		FundingStage: cmd.FundingStage,
		PitchDeckURL: cmd.PitchDeckURL,
		MyAsk:        cmd.MyAsk,

		FirmName:         cmd.FirmName,
		InvestmentThesis: cmd.InvestmentThesis,
		PreferredStage:   cmd.PreferredStage,
		WhatIOffer:       cmd.WhatIOffer,
	}
	if p.FullName == "" {
		p.FullName = "New User"
	}
	if p.PhotoURL == "" {
		p.PhotoURL = models.PlaceholderPhotoURL(uid)
	}

	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *IdentityUsecase) GetProfile(ctx context.Context, uid uuid.UUID) (*models.Profile, error) {
	p, err := uc.repo.GetProfileByID(ctx, uid)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (uc *IdentityUsecase) UpdateProfile(ctx context.Context, uid uuid.UUID, cmd identity.UpdateProfileCommand) (*models.Profile, error) {
	updated, err := uc.repo.UpdateProfile(ctx, uid, cmd)
	if err != nil {
		return nil, err
	}

	// Keep the session's cached copy in step, otherwise reads of the
	// current user go stale after a profile edit.
	uc.mu.Lock()
	if uc.current != nil && uc.current.UID == uid {
		uc.current = updated.Clone()
	}
	uc.mu.Unlock()

	return updated, nil
}

func (uc *IdentityUsecase) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	return uc.repo.ListProfiles(ctx)
}

func (uc *IdentityUsecase) SignUp(ctx context.Context, cmd identity.SignUpCommand) (*models.Profile, error) {
	p, err := uc.CreateProfile(ctx, identity.CreateProfileCommand{
		Email: cmd.Email,
		Role:  cmd.Role,
	})
	if err != nil {
		return nil, err
	}
	uc.activate(p)
	return p, nil
}

func (uc *IdentityUsecase) SignIn(ctx context.Context, cmd identity.SignInCommand) (*models.Profile, error) {
	return uc.signInByEmail(ctx, cmd.Email)
}

func (uc *IdentityUsecase) SignInWithGoogle(ctx context.Context) (*models.Profile, error) {
	return uc.signInByEmail(ctx, GoogleDemoEmail)
}

func (uc *IdentityUsecase) SignInWithApple(ctx context.Context) (*models.Profile, error) {
	return uc.signInByEmail(ctx, AppleDemoEmail)
}

func (uc *IdentityUsecase) signInByEmail(ctx context.Context, email string) (*models.Profile, error) {
	p, err := uc.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			uc.logger.Warn("sign-in for unknown email", "email", email)
			return nil, errors.ErrAuthenticationFailed
		}
		uc.logger.Error("store error resolving email", "err", err)
		return nil, errors.Internal("internal error")
	}
	uc.activate(p)
	return p, nil
}

func (uc *IdentityUsecase) SignOut(ctx context.Context) error {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
	uc.watchers.Publish(nil)
	return nil
}

func (uc *IdentityUsecase) CurrentUser() *models.Profile {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current.Clone()
}

func (uc *IdentityUsecase) Subscribe(fn func(*models.Profile)) func() {
	cancel := uc.watchers.Subscribe(fn)
	fn(uc.CurrentUser())
	return cancel
}

func (uc *IdentityUsecase) activate(p *models.Profile) {
	uc.mu.Lock()
	uc.current = p.Clone()
	uc.mu.Unlock()
	uc.watchers.Publish(p.Clone())
}
