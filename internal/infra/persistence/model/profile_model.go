package model

import (
	"time"

	"krishihive/internal/domain/entity"
)

// ProfileModel is the users/{uid} document.
type ProfileModel struct {
	DisplayName  string    `firestore:"displayName"`
	PhotoURL     string    `firestore:"photoURL,omitempty"`
	Email        string    `firestore:"email"`
	Role         string    `firestore:"role"`
	Organization string    `firestore:"organization,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt"`
	LastLogin    time.Time `firestore:"lastLogin"`
}

// ToProfileDomain converts a stored profile back to a domain entity. The UID
// comes from the document ID, not the document body.
func ToProfileDomain(uid string, m *ProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		UID:          uid,
		DisplayName:  m.DisplayName,
		PhotoURL:     m.PhotoURL,
		Email:        m.Email,
		Role:         entity.Role(m.Role),
		Organization: m.Organization,
		CreatedAt:    m.CreatedAt,
		LastLogin:    m.LastLogin,
	}
}

// FromProfileDomain converts a domain profile into its stored form.
func FromProfileDomain(profile *entity.UserProfile) *ProfileModel {
	return &ProfileModel{
		DisplayName:  profile.DisplayName,
		PhotoURL:     profile.PhotoURL,
		Email:        profile.Email,
		Role:         profile.Role.String(),
		Organization: profile.Organization,
		CreatedAt:    profile.CreatedAt,
		LastLogin:    profile.LastLogin,
	}
}
