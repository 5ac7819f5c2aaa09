package dto

import "time"

// UserResponse define la respuesta para un usuario
type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Role          int       `json:"role"`
	Status        int       `json:"status"`
	Avatar        string    `json:"avatar,omitempty"`
	OAuthProvider string    `json:"oauthProvider,omitempty"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	RoomIDs       []int64   `json:"roomIds,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
}

// UpdateRoleRequest cambia el rol de un usuario (solo admin)
type UpdateRoleRequest struct {
	Role int `json:"role"`
}
