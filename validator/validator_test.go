package validator

import (
	"testing"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"ana@example.com", "jose.perez+tag@mail.com.ar"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("email válido rechazado %q: %v", email, err)
		}
	}
	invalid := []string{"", "sinarroba", "a@b", "a@b.", "@example.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); !apperrors.HasCode(err, apperrors.ErrCodeInvalidEmail) {
			t.Errorf("email inválido aceptado: %q", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345678"); err != nil {
		t.Errorf("contraseña de 8 rechazada: %v", err)
	}
	if err := ValidatePassword("1234567"); err == nil {
		t.Error("contraseña corta aceptada")
	}
}

func TestValidateRegister(t *testing.T) {
	base := dto.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreta123",
	}

	if err := ValidateRegister(&base); err != nil {
		t.Fatalf("registro válido rechazado: %v", err)
	}

	sinEmail := base
	sinEmail.Email = ""
	if err := ValidateRegister(&sinEmail); !apperrors.HasCode(err, apperrors.ErrCodeRequiredField) {
		t.Errorf("registro sin email: esperaba REQUIRED_FIELD, recibí %v", err)
	}

	sinPassword := base
	sinPassword.Password = ""
	if err := ValidateRegister(&sinPassword); !apperrors.HasCode(err, apperrors.ErrCodeRequiredField) {
		t.Errorf("registro sin contraseña: esperaba REQUIRED_FIELD, recibí %v", err)
	}

	conTelefono := base
	conTelefono.PhoneNumber = "+5491155550000"
	if err := ValidateRegister(&conTelefono); err != nil {
		t.Errorf("teléfono válido rechazado: %v", err)
	}

	telefonoMalo := base
	telefonoMalo.PhoneNumber = "abc"
	if err := ValidateRegister(&telefonoMalo); err == nil {
		t.Error("teléfono inválido aceptado")
	}
}

func TestValidateRoom(t *testing.T) {
	base := dto.CreateRoomRequest{
		RoomName:        "Doble Clásica",
		Category:        "doble",
		Price:           120,
		BaseCapacity:    2,
		MaxCapacity:     4,
		ExtraGuestPrice: 25,
	}

	if err := ValidateRoom(&base); err != nil {
		t.Fatalf("habitación válida rechazada: %v", err)
	}

	capacidadInvertida := base
	capacidadInvertida.MaxCapacity = 1
	if err := ValidateRoom(&capacidadInvertida); err == nil {
		t.Error("capacidad máxima menor a la base aceptada")
	}

	recargoNegativo := base
	recargoNegativo.ExtraGuestPrice = -5
	if err := ValidateRoom(&recargoNegativo); err == nil {
		t.Error("recargo negativo aceptado")
	}

	sinNombre := base
	sinNombre.RoomName = ""
	if err := ValidateRoom(&sinNombre); !apperrors.HasCode(err, apperrors.ErrCodeRequiredField) {
		t.Errorf("habitación sin nombre: esperaba REQUIRED_FIELD, recibí %v", err)
	}
}

func TestValidateReservationRequest(t *testing.T) {
	base := dto.CreateReservationRequest{
		RoomID:       1,
		CheckInDate:  "2026-07-10",
		CheckOutDate: "2026-07-13",
		Guests:       2,
	}

	if err := ValidateReservationRequest(&base); err != nil {
		t.Fatalf("reserva válida rechazada: %v", err)
	}

	fechasInvertidas := base
	fechasInvertidas.CheckInDate = "2026-07-13"
	fechasInvertidas.CheckOutDate = "2026-07-10"
	if err := ValidateReservationRequest(&fechasInvertidas); !apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange) {
		t.Errorf("fechas invertidas: esperaba INVALID_DATE_RANGE, recibí %v", err)
	}

	formatoMalo := base
	formatoMalo.CheckInDate = "10/07/2026"
	if err := ValidateReservationRequest(&formatoMalo); !apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("formato de fecha: esperaba INVALID_FORMAT, recibí %v", err)
	}

	sinHuespedes := base
	sinHuespedes.Guests = 0
	if err := ValidateReservationRequest(&sinHuespedes); err == nil {
		t.Error("reserva sin huéspedes aceptada")
	}
}

func TestValidateComment(t *testing.T) {
	base := dto.CreateCommentRequest{RoomID: 1, Star: 4, Text: "Muy linda habitación"}
	if err := ValidateComment(&base); err != nil {
		t.Fatalf("comentario válido rechazado: %v", err)
	}

	for _, star := range []int{0, 6, -1} {
		c := base
		c.Star = star
		if err := ValidateComment(&c); err == nil {
			t.Errorf("estrellas fuera de rango aceptadas: %d", star)
		}
	}

	sinTexto := base
	sinTexto.Text = ""
	if err := ValidateComment(&sinTexto); err == nil {
		t.Error("comentario vacío aceptado")
	}
}

func TestValidateUser(t *testing.T) {
	base := models.User{
		Name:        "Ana",
		Email:       "ana@example.com",
		PhoneNumber: "+5491155550000",
		Role:        constants.RoleGuest,
	}

	if err := ValidateUser(&base); err != nil {
		t.Fatalf("usuario válido rechazado: %v", err)
	}

	sinTelefono := base
	sinTelefono.PhoneNumber = ""
	if err := ValidateUser(&sinTelefono); err != nil {
		t.Errorf("el teléfono es opcional: %v", err)
	}

	sinEmail := base
	sinEmail.Email = ""
	if err := ValidateUser(&sinEmail); !apperrors.HasCode(err, apperrors.ErrCodeRequiredField) {
		t.Errorf("usuario sin email: esperaba REQUIRED_FIELD, recibí %v", err)
	}

	emailMalo := base
	emailMalo.Email = "sinarroba"
	if err := ValidateUser(&emailMalo); !apperrors.HasCode(err, apperrors.ErrCodeInvalidEmail) {
		t.Errorf("email inválido: esperaba INVALID_EMAIL, recibí %v", err)
	}

	telefonoMalo := base
	telefonoMalo.PhoneNumber = "abc"
	if err := ValidateUser(&telefonoMalo); err == nil {
		t.Error("teléfono inválido aceptado")
	}

	rolMalo := base
	rolMalo.Role = 99
	if err := ValidateUser(&rolMalo); !apperrors.HasCode(err, apperrors.ErrCodeInvalidRole) {
		t.Errorf("rol inválido: esperaba INVALID_ROLE, recibí %v", err)
	}
}

func TestValidateRole(t *testing.T) {
	for _, role := range []int{constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin} {
		if err := ValidateRole(role); err != nil {
			t.Errorf("rol válido rechazado: %d", role)
		}
	}
	for _, role := range []int{-1, 3, 99} {
		if err := ValidateRole(role); !apperrors.HasCode(err, apperrors.ErrCodeInvalidRole) {
			t.Errorf("rol inválido aceptado: %d", role)
		}
	}
}
