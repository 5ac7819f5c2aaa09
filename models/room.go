package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	RoomId            uint            `json:"id" gorm:"primaryKey"`
	RoomName          string          `json:"roomName"`
	Category          string          `json:"category"` // simple, doble, suite...
	Price             int             `json:"price"`    // tarifa por noche
	BaseCapacity      int             `json:"baseCapacity"`
	MaxCapacity       int             `json:"maxCapacity"`
	ExtraGuestPrice   int             `json:"extraGuestPrice"` // recargo por noche por huésped sobre la capacidad base
	Description       string          `json:"description"`
	Avatar            string          `json:"avatar"`
	Img               json.RawMessage `json:"img" gorm:"type:json"`
	Status            int             `json:"status" gorm:"default:1"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Reservations      []Reservation   `gorm:"foreignKey:RoomID" json:"-"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 5 {
		return fmt.Errorf("estado inválido: %d, debe estar entre 0 y 5", r.Status)
	}
	return nil
}
