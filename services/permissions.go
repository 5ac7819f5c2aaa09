package services

import "github.com/abigaildinucci5-hue/tp-final-sub001/constants"

// Chequeos de permiso explícitos por capacidad, sobre el enum de roles.
// Cada transición del ciclo de vida tiene su función; nada de tablas
// indexadas por nombre de rol.

// CanManageRooms: alta, edición y baja lógica de habitaciones
func CanManageRooms(role int) bool {
	return role == constants.RoleAdmin
}

// CanConfirmReservation: pendiente -> confirmada
func CanConfirmReservation(role int) bool {
	return role == constants.RoleEmployee || role == constants.RoleAdmin
}

// CanRegisterCheckIn: confirmada -> check-in
func CanRegisterCheckIn(role int) bool {
	return role == constants.RoleEmployee || role == constants.RoleAdmin
}

// CanRegisterCheckOut: check-in -> check-out
func CanRegisterCheckOut(role int) bool {
	return role == constants.RoleEmployee || role == constants.RoleAdmin
}

// CanCancelReservation: el huésped cancela lo propio, el admin cualquiera.
// Los empleados no cancelan reservas.
func CanCancelReservation(role int, isOwner bool) bool {
	if role == constants.RoleAdmin {
		return true
	}
	return role == constants.RoleGuest && isOwner
}

// CanViewReservation: el huésped ve lo propio, empleados y admin todo
func CanViewReservation(role int, isOwner bool) bool {
	if role == constants.RoleEmployee || role == constants.RoleAdmin {
		return true
	}
	return isOwner
}

// CanManageUsers: listado de usuarios y cambio de rol
func CanManageUsers(role int) bool {
	return role == constants.RoleAdmin
}

// CanDeleteComment: el autor borra lo propio, el admin cualquiera
func CanDeleteComment(role int, isAuthor bool) bool {
	return role == constants.RoleAdmin || isAuthor
}
