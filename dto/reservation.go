package dto

import "time"

type CreateReservationRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type AvailabilityResponse struct {
	Available  bool  `json:"available"`
	ConflictID *uint `json:"conflictingReservationId,omitempty"`
}

type PriceRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

type PriceResponse struct {
	Nights     int     `json:"nights"`
	BasePrice  int     `json:"basePrice"`
	ExtraPrice int     `json:"extraPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type ReservationRoomResponse struct {
	ID       uint   `json:"id"`
	RoomName string `json:"roomName"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	Avatar   string `json:"avatar"`
}

type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type ReservationResponse struct {
	ID           uint                    `json:"id"`
	User         ActorResponse           `json:"user"`
	Room         ReservationRoomResponse `json:"room"`
	CheckInDate  string                  `json:"checkInDate"`
	CheckOutDate string                  `json:"checkOutDate"`
	Guests       int                     `json:"guests"`
	Status       int                     `json:"status"`
	BasePrice    int                     `json:"basePrice"`
	ExtraPrice   int                     `json:"extraPrice"`
	TotalPrice   float64                 `json:"totalPrice"`
	CancelReason string                  `json:"cancelReason,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// CheckOutResponse agrega los puntos de fidelidad calculados al finalizar la estadía
type CheckOutResponse struct {
	Reservation   ReservationResponse `json:"reservation"`
	LoyaltyPoints int                 `json:"loyaltyPoints"`
}
