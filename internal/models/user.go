package models

import (
	"time"

	"github.com/google/uuid"
)

// Sign-in providers
const (
	ProviderLocal  = "local"
	ProviderGitHub = "github"
	ProviderGoogle = "google"
)

type User struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	AvatarURL    *string   `json:"avatar,omitempty"`
	Provider     string    `json:"provider"`
	ProviderID   *string   `json:"-"`
	CreatedAt    time.Time `json:"date"`
	UpdatedAt    time.Time `json:"updated_at"`
}
