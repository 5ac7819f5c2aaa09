package dto

import (
	"encoding/json"
	"time"
)

type CreateRoomRequest struct {
	RoomName        string          `json:"roomName" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	Price           int             `json:"price" binding:"required"`
	BaseCapacity    int             `json:"baseCapacity" binding:"required"`
	MaxCapacity     int             `json:"maxCapacity" binding:"required"`
	ExtraGuestPrice int             `json:"extraGuestPrice"`
	Description     string          `json:"description"`
	Avatar          string          `json:"avatar"`
	Img             json.RawMessage `json:"img"`
}

type UpdateRoomRequest struct {
	RoomName        string          `json:"roomName"`
	Category        string          `json:"category"`
	Price           *int            `json:"price"`
	BaseCapacity    *int            `json:"baseCapacity"`
	MaxCapacity     *int            `json:"maxCapacity"`
	ExtraGuestPrice *int            `json:"extraGuestPrice"`
	Description     string          `json:"description"`
	Avatar          string          `json:"avatar"`
	Img             json.RawMessage `json:"img"`
}

type RoomStatusRequest struct {
	Status int `json:"status"`
}

type RoomResponse struct {
	ID              uint            `json:"id"`
	RoomName        string          `json:"roomName"`
	Category        string          `json:"category"`
	Price           int             `json:"price"`
	BaseCapacity    int             `json:"baseCapacity"`
	MaxCapacity     int             `json:"maxCapacity"`
	ExtraGuestPrice int             `json:"extraGuestPrice"`
	Description     string          `json:"description"`
	Avatar          string          `json:"avatar"`
	Img             json.RawMessage `json:"img"`
	Status          int             `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
