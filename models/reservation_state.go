package models

import (
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

// ReservationState define la interfaz para los estados de una reserva.
// Toda transición no listada devuelve un error de transición inválida y
// deja el estado sin tocar.
type ReservationState interface {
	Confirm(r *Reservation) error
	Cancel(r *Reservation) error
	CheckIn(r *Reservation) error
	CheckOut(r *Reservation) error
}

func invalidTransition(msg string) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition, msg, nil)
}

// PendingState estado inicial, esperando confirmación
type PendingState struct{}

func (s *PendingState) Confirm(r *Reservation) error {
	r.Status = ReservationStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *PendingState) CheckIn(r *Reservation) error {
	return invalidTransition("la reserva debe estar confirmada antes del check-in")
}

func (s *PendingState) CheckOut(r *Reservation) error {
	return invalidTransition("no se puede hacer check-out de una reserva pendiente")
}

// ConfirmedState reserva confirmada por un empleado
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	return invalidTransition("la reserva ya está confirmada")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

func (s *ConfirmedState) CheckIn(r *Reservation) error {
	r.Status = ReservationStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation) error {
	return invalidTransition("no se puede hacer check-out sin check-in previo")
}

// CheckedInState huésped alojado; ya no se puede cancelar
type CheckedInState struct{}

func (s *CheckedInState) Confirm(r *Reservation) error {
	return invalidTransition("la reserva ya tiene check-in")
}

func (s *CheckedInState) Cancel(r *Reservation) error {
	return invalidTransition("no se puede cancelar una reserva con check-in")
}

func (s *CheckedInState) CheckIn(r *Reservation) error {
	return invalidTransition("la reserva ya tiene check-in")
}

func (s *CheckedInState) CheckOut(r *Reservation) error {
	r.Status = ReservationStatusCheckedOut
	return nil
}

// CheckedOutState estado terminal
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(r *Reservation) error {
	return invalidTransition("la reserva ya finalizó")
}

func (s *CheckedOutState) Cancel(r *Reservation) error {
	return invalidTransition("no se puede cancelar una reserva finalizada")
}

func (s *CheckedOutState) CheckIn(r *Reservation) error {
	return invalidTransition("la reserva ya finalizó")
}

func (s *CheckedOutState) CheckOut(r *Reservation) error {
	return invalidTransition("la reserva ya finalizó")
}

// CancelledState estado terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return invalidTransition("no se puede confirmar una reserva cancelada")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return invalidTransition("la reserva ya está cancelada")
}

func (s *CancelledState) CheckIn(r *Reservation) error {
	return invalidTransition("no se puede hacer check-in de una reserva cancelada")
}

func (s *CancelledState) CheckOut(r *Reservation) error {
	return invalidTransition("no se puede hacer check-out de una reserva cancelada")
}

// GetReservationState devuelve el estado correspondiente al status actual
func GetReservationState(status int) ReservationState {
	switch status {
	case ReservationStatusPending:
		return &PendingState{}
	case ReservationStatusConfirmed:
		return &ConfirmedState{}
	case ReservationStatusCheckedIn:
		return &CheckedInState{}
	case ReservationStatusCheckedOut:
		return &CheckedOutState{}
	case ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
