package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// los DTOs ya llevan tags binding para gin; se reusan acá
	v.SetTagName("binding")
	return v
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// ValidateEmail chequea que el email sea válido
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidEmail, "El email no es válido", nil)
	}
	return nil
}

// ValidatePhone chequea que el teléfono sea válido
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "El teléfono no es válido", nil)
	}
	return nil
}

// ValidatePassword exige un mínimo de 8 caracteres
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "La contraseña debe tener al menos 8 caracteres", nil)
	}
	return nil
}

// ValidateRegister valida el alta de usuario local
func ValidateRegister(input *dto.RegisterInput) error {
	if input.Email == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "El email es obligatorio", nil)
	}
	if err := ValidateEmail(input.Email); err != nil {
		return err
	}
	if input.Password == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "La contraseña es obligatoria", nil)
	}
	if err := ValidatePassword(input.Password); err != nil {
		return err
	}
	if input.PhoneNumber != "" {
		if err := ValidatePhone(input.PhoneNumber); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRoom valida el alta/edición de una habitación
func ValidateRoom(req *dto.CreateRoomRequest) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Faltan campos obligatorios de la habitación", err)
	}
	if req.Price <= 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "La tarifa por noche debe ser mayor a cero", nil)
	}
	if req.BaseCapacity < 1 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "La capacidad base debe ser al menos 1", nil)
	}
	if req.MaxCapacity < req.BaseCapacity {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "La capacidad máxima no puede ser menor a la base", nil)
	}
	if req.ExtraGuestPrice < 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "El recargo por huésped extra no puede ser negativo", nil)
	}
	return nil
}

// ValidateReservationRequest valida la creación de reserva antes de tocar la base
func ValidateReservationRequest(req *dto.CreateReservationRequest) error {
	if req.RoomID == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "La habitación es obligatoria", nil)
	}
	checkIn, err := time.Parse(constants.DateLayout, req.CheckInDate)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Fecha de check-in inválida, usá AAAA-MM-DD", err)
	}
	checkOut, err := time.Parse(constants.DateLayout, req.CheckOutDate)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Fecha de check-out inválida, usá AAAA-MM-DD", err)
	}
	if !checkOut.After(checkIn) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "El check-out debe ser posterior al check-in", nil)
	}
	if req.Guests < 1 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "La cantidad de huéspedes debe ser al menos 1", nil)
	}
	return nil
}

// ValidateComment valida un comentario nuevo
func ValidateComment(req *dto.CreateCommentRequest) error {
	if req.RoomID == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "La habitación es obligatoria", nil)
	}
	if req.Star < 1 || req.Star > 5 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Las estrellas van de 1 a 5", nil)
	}
	if req.Text == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "El texto del comentario es obligatorio", nil)
	}
	return nil
}

// ValidateRole chequea que el rol exista en el enum
func ValidateRole(role int) error {
	switch role {
	case constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin:
		return nil
	}
	return apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "Rol inválido", nil)
}

// ValidateUser valida los campos editables del perfil
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "El email es obligatorio", nil)
	}
	if err := ValidateEmail(user.Email); err != nil {
		return err
	}
	if user.PhoneNumber != "" {
		if err := ValidatePhone(user.PhoneNumber); err != nil {
			return err
		}
	}
	return ValidateRole(user.Role)
}
