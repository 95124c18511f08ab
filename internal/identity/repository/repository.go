package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/identity"
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	appErrors "github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
)

// ProfileRepository is the in-memory identity store. It stands in for a
// real backend: process-scoped, constructed once, reset only by tests.
type ProfileRepository struct {
	logger *logger.Logger

	mu sync.RWMutex
	// profiles keeps insertion order, matching the mock-array backend the
	// directory listing was built against.
	profiles []*models.Profile
	byID     map[uuid.UUID]*models.Profile
	byEmail  map[string]*models.Profile
}

var _ identity.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(logger logger.Logger) *ProfileRepository {
	return &ProfileRepository{
		logger:  &logger,
		byID:    make(map[uuid.UUID]*models.Profile),
		byEmail: make(map[string]*models.Profile),
	}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[profile.Email]; taken {
		return appErrors.ErrEmailTaken
	}
	if profile.UID == uuid.Nil {
		profile.UID = uuid.New()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	stored := profile.Clone()
	r.profiles = append(r.profiles, stored)
	r.byID[stored.UID] = stored
	r.byEmail[stored.Email] = stored
	return nil
}

func (r *ProfileRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *ProfileRepository) GetProfileByID(ctx context.Context, uid uuid.UUID) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[uid]
	if !ok {
		return nil, appErrors.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *ProfileRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byEmail[email]
	if !ok {
		return nil, appErrors.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, uid uuid.UUID, cmd identity.UpdateProfileCommand) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[uid]
	if !ok {
		return nil, appErrors.ErrProfileNotFound
	}

	if cmd.Email != nil && *cmd.Email != p.Email {
		// Email uniqueness is only enforced at creation time; a rename
		// still has to keep the lookup index coherent.
		delete(r.byEmail, p.Email)
		p.Email = *cmd.Email
		r.byEmail[p.Email] = p
	}
	setIf(&p.FullName, cmd.FullName)
	setIf(&p.PhotoURL, cmd.PhotoURL)
	setIf(&p.StartupName, cmd.StartupName)
	setIf(&p.OneLinePitch, cmd.OneLinePitch)
	setIf(&p.Industry, cmd.Industry)
	setIf(&p.FundingStage, cmd.FundingStage)
	setIf(&p.PitchDeckURL, cmd.PitchDeckURL)
	setIf(&p.MyAsk, cmd.MyAsk)
	setIf(&p.FirmName, cmd.FirmName)
	setIf(&p.InvestmentThesis, cmd.InvestmentThesis)
	setIf(&p.PreferredStage, cmd.PreferredStage)
	setIf(&p.WhatIOffer, cmd.WhatIOffer)
	p.UpdatedAt = time.Now()

	return p.Clone(), nil
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *ProfileRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles = nil
	r.byID = make(map[uuid.UUID]*models.Profile)
	r.byEmail = make(map[string]*models.Profile)
	return nil
}
