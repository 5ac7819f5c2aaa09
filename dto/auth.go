package dto

import "time"

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleAuthInput trae el ID token emitido por Google del lado del cliente
type GoogleAuthInput struct {
	TokenId string `json:"tokenId" binding:"required"`
}

// GitHubAuthInput trae el authorization code del callback de GitHub
type GitHubAuthInput struct {
	Code string `json:"code" binding:"required"`
}

type UserLoginResponse struct {
	UserID        uint      `json:"id"`
	UserName      string    `json:"name"`
	UserEmail     string    `json:"email"`
	UserPhone     string    `json:"phone"`
	UserRole      int       `json:"role"`
	UserAvatar    string    `json:"avatar"`
	OAuthProvider string    `json:"oauthProvider,omitempty"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TokenPairResponse es el par access/refresh que devuelven login, OAuth y refresh
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// OAuthUser es la identidad verificada que devuelve un proveedor externo
type OAuthUser struct {
	ProviderID string `json:"providerId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
}
