package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
)

// Availability es el resultado de la consulta de disponibilidad
type Availability struct {
	Available  bool
	ConflictID uint // id de la reserva que bloquea, si Available es false
}

// PriceDetail es el desglose del precio total de una estadía
type PriceDetail struct {
	Nights     int
	BasePrice  int
	ExtraPrice int
	TotalPrice float64
}

// blockingStatuses son los estados que ocupan la habitación
var blockingStatuses = []int{
	constants.ReservationStatusPending,
	constants.ReservationStatusConfirmed,
	constants.ReservationStatusCheckedIn,
}

// ParseDateRange parsea y valida el rango [checkIn, checkOut).
// Las fechas son días enteros; cualquier otro formato se rechaza.
func ParseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constants.DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Fecha de check-in inválida, usá AAAA-MM-DD", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Fecha de check-out inválida, usá AAAA-MM-DD", err)
	}
	if Nights(checkIn, checkOut) < 1 {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "El check-out debe ser posterior al check-in", nil)
	}
	return checkIn, checkOut, nil
}

// Nights cuenta las noches del rango semiabierto [checkIn, checkOut)
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// RangesOverlap aplica la regla de solapamiento de intervalos semiabiertos:
// existente.inicio < pedido.fin && existente.fin > pedido.inicio
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// findRoom busca la habitación o devuelve ROOM_NOT_FOUND
func findRoom(db *gorm.DB, roomID uint) (models.Room, error) {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Habitación no encontrada", err)
		}
		return room, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar la habitación", err)
	}
	return room, nil
}

// findConflict busca la primera reserva que bloquea el rango pedido
func findConflict(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	var conflict models.Reservation
	err := db.Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
		roomID, blockingStatuses, checkOut, checkIn).
		Order("id").
		First(&conflict).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al consultar reservas", err)
	}
	return &conflict, nil
}

// CheckAvailability indica si la habitación está libre en [checkIn, checkOut).
// Las validaciones específicas (habitación inexistente, rango inválido)
// fallan antes que la consulta de disponibilidad para que el cliente reciba
// el motivo concreto y no un "no disponible" genérico.
func CheckAvailability(db *gorm.DB, roomID uint, checkInStr, checkOutStr string) (Availability, error) {
	room, err := findRoom(db, roomID)
	if err != nil {
		return Availability{}, err
	}

	checkIn, checkOut, err := ParseDateRange(checkInStr, checkOutStr)
	if err != nil {
		return Availability{}, err
	}

	if room.Status == constants.RoomStatusInactive || room.Status == constants.RoomStatusMaintenance {
		return Availability{Available: false}, nil
	}

	conflict, err := findConflict(db, roomID, checkIn, checkOut)
	if err != nil {
		return Availability{}, err
	}
	if conflict != nil {
		return Availability{Available: false, ConflictID: conflict.ID}, nil
	}
	return Availability{Available: true}, nil
}

// ComputeTotal calcula el desglose del precio. Determinista: mismos
// parámetros, mismo total.
func ComputeTotal(nightly, extraGuestPrice, baseCapacity, nights, guests int) PriceDetail {
	base := nightly * nights
	extra := 0
	if guests > baseCapacity {
		extra = (guests - baseCapacity) * extraGuestPrice * nights
	}
	return PriceDetail{
		Nights:     nights,
		BasePrice:  base,
		ExtraPrice: extra,
		TotalPrice: float64(base + extra),
	}
}

// CalculatePrice calcula el precio total de una estadía.
// Superar la capacidad máxima es un error de validación, no un recargo.
func CalculatePrice(db *gorm.DB, roomID uint, checkInStr, checkOutStr string, guests int) (PriceDetail, error) {
	room, err := findRoom(db, roomID)
	if err != nil {
		return PriceDetail{}, err
	}

	checkIn, checkOut, err := ParseDateRange(checkInStr, checkOutStr)
	if err != nil {
		return PriceDetail{}, err
	}

	if guests < 1 {
		return PriceDetail{}, apperrors.NewAppError(apperrors.ErrCodeValidation, "La cantidad de huéspedes debe ser al menos 1", nil)
	}
	if guests > room.MaxCapacity {
		return PriceDetail{}, apperrors.NewAppError(apperrors.ErrCodeCapacityExceeded, "La cantidad de huéspedes supera la capacidad de la habitación", nil)
	}

	return ComputeTotal(room.Price, room.ExtraGuestPrice, room.BaseCapacity, Nights(checkIn, checkOut), guests), nil
}
