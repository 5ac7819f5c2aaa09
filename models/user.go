package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:Huésped" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"-"` // hash bcrypt, vacío si la cuenta es solo OAuth
	PhoneNumber   string        `gorm:"type:varchar(20)" json:"phoneNumber"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"`
	Status        int           `gorm:"default:1" json:"status"`
	OAuthProvider string        `gorm:"type:varchar(20)" json:"oauthProvider,omitempty"` // "google" | "github" | ""
	OAuthID       string        `gorm:"index" json:"-"`
	LoyaltyPoints int           `gorm:"default:0" json:"loyaltyPoints"`
	RoomIDs       pq.Int64Array `gorm:"type:integer[]" json:"roomIds,omitempty"` // habitaciones asignadas, solo empleados
	Reservations  []Reservation `gorm:"foreignKey:UserID" json:"reservations,omitempty"`
}
