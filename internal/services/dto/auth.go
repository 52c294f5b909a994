package dto

import (
	"time"

	"pitchplan_backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the public view of a user account.
type UserInfo struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	PlanType         string    `json:"planType"`
	GenerationsUsed  int       `json:"generationsUsed"`
	GenerationsLimit int       `json:"generationsLimit"`
	ResetDate        time.Time `json:"resetDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

func UserInfoFromModel(u *models.User) UserInfo {
	return UserInfo{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		PlanType:         string(u.PlanType),
		GenerationsUsed:  u.GenerationsUsed,
		GenerationsLimit: u.GenerationsLimit,
		ResetDate:        u.ResetDate,
		CreatedAt:        u.CreatedAt,
	}
}
