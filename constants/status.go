package constants

// Roles de usuario
const (
	RoleGuest    = 0
	RoleEmployee = 1
	RoleAdmin    = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Estado de reserva
const (
	ReservationStatusPending    = 0
	ReservationStatusConfirmed  = 1
	ReservationStatusCheckedIn  = 2
	ReservationStatusCheckedOut = 3
	ReservationStatusCancelled  = 4
)

// Estado de habitación
const (
	RoomStatusInactive        = 0 // baja lógica, nunca se borra mientras tenga reservas
	RoomStatusAvailable       = 1
	RoomStatusReserved        = 2
	RoomStatusOccupied        = 3
	RoomStatusMaintenance     = 4
	RoomStatusCleaningPending = 5
)

// Formato de fecha de la API (solo días enteros)
const DateLayout = "2006-01-02"
