package dto

import (
	"time"

	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar,omitempty"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"date"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Provider:  u.Provider,
		CreatedAt: u.CreatedAt,
	}
}
