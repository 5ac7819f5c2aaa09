package services

import (
	"testing"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
)

func TestCanManageRooms(t *testing.T) {
	if !CanManageRooms(constants.RoleAdmin) {
		t.Error("el admin debería poder gestionar habitaciones")
	}
	if CanManageRooms(constants.RoleEmployee) || CanManageRooms(constants.RoleGuest) {
		t.Error("solo el admin gestiona habitaciones")
	}
}

func TestLifecyclePermissions(t *testing.T) {
	checks := map[string]func(int) bool{
		"confirmar": CanConfirmReservation,
		"check-in":  CanRegisterCheckIn,
		"check-out": CanRegisterCheckOut,
	}
	for name, check := range checks {
		if !check(constants.RoleEmployee) || !check(constants.RoleAdmin) {
			t.Errorf("%s: empleado y admin deberían poder", name)
		}
		if check(constants.RoleGuest) {
			t.Errorf("%s: el huésped no debería poder", name)
		}
	}
}

func TestCanCancelReservation(t *testing.T) {
	cases := []struct {
		name    string
		role    int
		isOwner bool
		want    bool
	}{
		{"huésped cancela lo propio", constants.RoleGuest, true, true},
		{"huésped no cancela ajeno", constants.RoleGuest, false, false},
		{"empleado no cancela nunca", constants.RoleEmployee, true, false},
		{"admin cancela cualquiera", constants.RoleAdmin, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCancelReservation(tc.role, tc.isOwner); got != tc.want {
				t.Errorf("CanCancelReservation(%d, %v) = %v, esperaba %v", tc.role, tc.isOwner, got, tc.want)
			}
		})
	}
}

func TestCanViewReservation(t *testing.T) {
	if !CanViewReservation(constants.RoleGuest, true) {
		t.Error("el huésped debería ver su reserva")
	}
	if CanViewReservation(constants.RoleGuest, false) {
		t.Error("el huésped no debería ver reservas ajenas")
	}
	if !CanViewReservation(constants.RoleEmployee, false) || !CanViewReservation(constants.RoleAdmin, false) {
		t.Error("empleados y admin ven todas las reservas")
	}
}

func TestCanDeleteComment(t *testing.T) {
	if !CanDeleteComment(constants.RoleGuest, true) {
		t.Error("el autor debería poder borrar su comentario")
	}
	if CanDeleteComment(constants.RoleGuest, false) {
		t.Error("un huésped no borra comentarios ajenos")
	}
	if !CanDeleteComment(constants.RoleAdmin, false) {
		t.Error("el admin borra cualquier comentario")
	}
}
