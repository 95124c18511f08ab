package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleFounder Role = "Founder"
	RoleFunder  Role = "Funder"
)

func (r Role) Valid() bool {
	return r == RoleFounder || r == RoleFunder
}

type Profile struct {
	// UID is assigned at creation and never reused.
	UID uuid.UUID `json:"uid"`

	// Email is unique among profiles, enforced at creation only.
	Email string `json:"email"`

	// Role is immutable after creation.
	Role Role `json:"role"`

	FullName string `json:"fullName"`
	PhotoURL string `json:"photoURL"`

	// Founder specific
	StartupName  string `json:"startupName,omitempty"`
	OneLinePitch string `json:"oneLinePitch,omitempty"`
	Industry     string `json:"industry,omitempty"`
	FundingStage string `json:"fundingStage,omitempty"`
	PitchDeckURL string `json:"pitchDeckUrl,omitempty"`
	MyAsk        string `json:"myAsk,omitempty"`

	// Funder specific
	FirmName         string `json:"firmName,omitempty"`
	InvestmentThesis string `json:"investmentThesis,omitempty"`
	PreferredStage   string `json:"preferredStage,omitempty"`
	WhatIOffer       string `json:"whatIOffer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a shallow copy so store internals never leak to callers.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// PlaceholderPhotoURL is the default avatar for profiles created without one.
func PlaceholderPhotoURL(uid uuid.UUID) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/200", uid)
}
