package models

import (
	"time"
)

// Estado de reserva (ver reservation_state.go para las transiciones)
const (
	ReservationStatusPending    = 0
	ReservationStatusConfirmed  = 1
	ReservationStatusCheckedIn  = 2
	ReservationStatusCheckedOut = 3
	ReservationStatusCancelled  = 4
)

type Reservation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RoomID        uint      `json:"roomId" gorm:"index;not null"`
	Room          Room      `json:"room" gorm:"foreignKey:RoomID"`
	UserID        uint      `json:"userId" gorm:"index;not null"`
	User          User      `json:"user" gorm:"foreignKey:UserID"`
	CheckInDate   time.Time `json:"checkInDate" gorm:"type:date;index"`  // inclusive
	CheckOutDate  time.Time `json:"checkOutDate" gorm:"type:date;index"` // exclusiva
	Guests        int       `json:"guests"`
	Status        int       `json:"status" gorm:"default:0;index"`
	BasePrice     int       `json:"basePrice"`      // tarifa x noches
	ExtraPrice    int       `json:"extraPrice"`     // recargo por huéspedes extra
	TotalPrice    float64   `json:"totalPrice"`
	CancelReason  string    `json:"cancelReason,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BlocksAvailability indica si la reserva ocupa la habitación para el
// cálculo de disponibilidad. Canceladas y finalizadas no bloquean.
func (r *Reservation) BlocksAvailability() bool {
	switch r.Status {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn:
		return true
	}
	return false
}
