package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services/logger"
)

// ReservationService maneja el ciclo de vida de las reservas
type ReservationService struct {
	db      *gorm.DB
	log     logger.Logger
	loyalty LoyaltyPolicy
}

type ReservationServiceOptions struct {
	DB      *gorm.DB
	Logger  logger.Logger
	Loyalty LoyaltyPolicy
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Loyalty == nil {
		opts.Loyalty = DefaultLoyaltyPolicy
	}
	return &ReservationService{
		db:      opts.DB,
		log:     opts.Logger,
		loyalty: opts.Loyalty,
	}
}

// Create crea una reserva en estado pendiente. Toda la operación corre en
// una transacción que toma un lock de fila sobre la habitación
// (SELECT ... FOR UPDATE) antes de re-chequear la disponibilidad: de dos
// pedidos concurrentes con rangos solapados gana exactamente uno y el otro
// recibe ROOM_UNAVAILABLE sin dejar fila a medias.
func (s *ReservationService) Create(userID uint, req dto.CreateReservationRequest) (*models.Reservation, error) {
	checkIn, checkOut, err := ParseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	var reservation models.Reservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Habitación no encontrada", err)
			}
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar la habitación", err)
		}

		if room.Status == constants.RoomStatusInactive || room.Status == constants.RoomStatusMaintenance {
			return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable, "La habitación no está disponible", nil)
		}

		if req.Guests < 1 {
			return apperrors.NewAppError(apperrors.ErrCodeValidation, "La cantidad de huéspedes debe ser al menos 1", nil)
		}
		if req.Guests > room.MaxCapacity {
			return apperrors.NewAppError(apperrors.ErrCodeCapacityExceeded, "La cantidad de huéspedes supera la capacidad de la habitación", nil)
		}

		conflict, err := findConflict(tx, room.RoomId, checkIn, checkOut)
		if err != nil {
			return err
		}
		if conflict != nil {
			return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable, "La habitación ya está reservada en ese rango de fechas", nil)
		}

		detail := ComputeTotal(room.Price, room.ExtraGuestPrice, room.BaseCapacity, Nights(checkIn, checkOut), req.Guests)

		reservation = models.Reservation{
			RoomID:       room.RoomId,
			UserID:       userID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Guests:       req.Guests,
			Status:       constants.ReservationStatusPending,
			BasePrice:    detail.BasePrice,
			ExtraPrice:   detail.ExtraPrice,
			TotalPrice:   detail.TotalPrice,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear la reserva", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("reserva %d creada: habitación %d, %s a %s", reservation.ID, reservation.RoomID, req.CheckInDate, req.CheckOutDate)
	return &reservation, nil
}

// findReservation trae la reserva o RESERVATION_NOT_FOUND
func (s *ReservationService) findReservation(tx *gorm.DB, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := tx.Preload("Room").Preload("User").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeReservationNotFound, "Reserva no encontrada", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar la reserva", err)
	}
	return &reservation, nil
}

// GetByID trae una reserva chequeando permisos de lectura
func (s *ReservationService) GetByID(id, userID uint, role int) (*models.Reservation, error) {
	reservation, err := s.findReservation(s.db, id)
	if err != nil {
		return nil, err
	}
	if !CanViewReservation(role, reservation.UserID == userID) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "No tenés permisos sobre esta reserva", nil)
	}
	return reservation, nil
}

// Confirm pasa la reserva de pendiente a confirmada (empleado/admin)
func (s *ReservationService) Confirm(id uint, role int) (*models.Reservation, error) {
	if !CanConfirmReservation(role) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Solo un empleado o admin puede confirmar reservas", nil)
	}

	var reservation *models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		reservation, err = s.findReservation(tx, id)
		if err != nil {
			return err
		}
		if err := models.GetReservationState(reservation.Status).Confirm(reservation); err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).Where("id = ?", id).
			Update("status", reservation.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Cancel cancela la reserva: el huésped la propia, el admin cualquiera.
// Solo desde pendiente o confirmada; con check-in ya no se cancela.
func (s *ReservationService) Cancel(id, userID uint, role int, reason string) (*models.Reservation, error) {
	var reservation *models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		reservation, err = s.findReservation(tx, id)
		if err != nil {
			return err
		}
		if !CanCancelReservation(role, reservation.UserID == userID) {
			return apperrors.NewAppError(apperrors.ErrCodeForbidden, "No podés cancelar esta reserva", nil)
		}
		if err := models.GetReservationState(reservation.Status).Cancel(reservation); err != nil {
			return err
		}
		reservation.CancelReason = reason
		return tx.Model(&models.Reservation{}).Where("id = ?", id).
			Updates(map[string]interface{}{"status": reservation.Status, "cancel_reason": reason}).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("reserva %d cancelada por usuario %d", id, userID)
	return reservation, nil
}

// CheckIn registra la llegada del huésped y marca la habitación como ocupada
func (s *ReservationService) CheckIn(id uint, role int) (*models.Reservation, error) {
	if !CanRegisterCheckIn(role) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Solo un empleado o admin puede registrar el check-in", nil)
	}

	var reservation *models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		reservation, err = s.findReservation(tx, id)
		if err != nil {
			return err
		}
		if err := models.GetReservationState(reservation.Status).CheckIn(reservation); err != nil {
			return err
		}
		if err := tx.Model(&models.Reservation{}).Where("id = ?", id).
			Update("status", reservation.Status).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("room_id = ?", reservation.RoomID).
			Update("status", constants.RoomStatusOccupied).Error
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// CheckOut cierra la estadía, deja la habitación pendiente de limpieza y
// devuelve los puntos de fidelidad calculados por la política inyectada
func (s *ReservationService) CheckOut(id uint, role int) (*models.Reservation, int, error) {
	if !CanRegisterCheckOut(role) {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Solo un empleado o admin puede registrar el check-out", nil)
	}

	var reservation *models.Reservation
	var points int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		reservation, err = s.findReservation(tx, id)
		if err != nil {
			return err
		}
		if err := models.GetReservationState(reservation.Status).CheckOut(reservation); err != nil {
			return err
		}
		if err := tx.Model(&models.Reservation{}).Where("id = ?", id).
			Update("status", reservation.Status).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("room_id = ?", reservation.RoomID).
			Update("status", constants.RoomStatusCleaningPending).Error; err != nil {
			return err
		}

		points = s.loyalty(reservation.TotalPrice)
		if points > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", reservation.UserID).
				Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	s.log.Info("check-out de reserva %d: %d puntos otorgados", id, points)
	return reservation, points, nil
}
