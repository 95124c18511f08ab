package identity

import (
	models "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

// NOTE: commands travel from handler to usecase

type CreateProfileCommand struct {
	Email string
	Role  models.Role

	// Seed fields. Anything left empty gets a role-appropriate default.
	FullName string
	PhotoURL string

	StartupName  string
	OneLinePitch string
	Industry     string
	FundingStage string
	PitchDeckURL string
	MyAsk        string

	FirmName         string
	InvestmentThesis string
	PreferredStage   string
	WhatIOffer       string
}

// UpdateProfileCommand carries a partial field set. Nil pointers mean
// "leave the stored value untouched"; set pointers overwrite.
// Role and UID are immutable and deliberately absent.
type UpdateProfileCommand struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	PhotoURL *string `json:"photoURL"`

	StartupName  *string `json:"startupName"`
	OneLinePitch *string `json:"oneLinePitch"`
	Industry     *string `json:"industry"`
	FundingStage *string `json:"fundingStage"`
	PitchDeckURL *string `json:"pitchDeckUrl"`
	MyAsk        *string `json:"myAsk"`

	FirmName         *string `json:"firmName"`
	InvestmentThesis *string `json:"investmentThesis"`
	PreferredStage   *string `json:"preferredStage"`
	WhatIOffer       *string `json:"whatIOffer"`
}

type SignUpCommand struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type SignInCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
