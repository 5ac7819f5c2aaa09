package services

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Usuario no encontrado", result.Error)
	}
	if result.Error != nil {
		return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el usuario", result.Error)
	}
	return user, nil
}

// Authenticate valida email y contraseña. El mensaje de error es el mismo
// para usuario inexistente y contraseña incorrecta: no se revela cuál falló.
func Authenticate(db *gorm.DB, email, password string) (models.User, error) {
	credErr := apperrors.NewAppError(apperrors.ErrCodeInvalidCredentials, "Email o contraseña inválidos", nil)

	user, err := GetUserByEmail(db, strings.ToLower(email))
	if err != nil {
		return models.User{}, credErr
	}
	if user.Password == "" {
		// cuenta creada por OAuth, sin contraseña local
		return models.User{}, credErr
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, credErr
	}
	if user.Status != constants.UserStatusActive {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeForbidden, "La cuenta está deshabilitada", nil)
	}
	return user, nil
}

// CreateUser registra un usuario local con contraseña
func CreateUser(db *gorm.DB, input dto.RegisterInput) (models.User, error) {
	email := strings.ToLower(input.Email)

	if _, err := GetUserByEmail(db, email); err == nil {
		return models.User{}, apperrors.NewAppError(apperrors.ErrCodeUserExists, fmt.Sprintf("El email %s ya está en uso", email), nil)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:        input.Name,
		Email:       email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        constants.RoleGuest,
		Status:      constants.UserStatusActive,
	}
	if result := db.Create(&user); result.Error != nil {
		return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear el usuario", result.Error)
	}
	return user, nil
}

// UpsertOAuthUser crea o vincula un usuario a partir de la identidad
// verificada que devolvió el proveedor. La vinculación es por email.
func UpsertOAuthUser(db *gorm.DB, provider string, identity dto.OAuthUser) (models.User, error) {
	email := strings.ToLower(identity.Email)

	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:          identity.Name,
			Email:         email,
			Password:      "",
			Avatar:        identity.Avatar,
			Role:          constants.RoleGuest,
			Status:        constants.UserStatusActive,
			OAuthProvider: provider,
			OAuthID:       identity.ProviderID,
		}
		if err := db.Create(&user).Error; err != nil {
			return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear el usuario", err)
		}
		return user, nil
	}
	if result.Error != nil {
		return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el usuario", result.Error)
	}

	// usuario existente: se vincula el proveedor si todavía no tiene uno
	if user.OAuthProvider == "" {
		user.OAuthProvider = provider
		user.OAuthID = identity.ProviderID
		if identity.Avatar != "" && user.Avatar == "" {
			user.Avatar = identity.Avatar
		}
		if err := db.Save(&user).Error; err != nil {
			return user, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al vincular la cuenta", err)
		}
	}
	return user, nil
}

// SendReservationEmail manda el mail de confirmación de reserva. Es best
// effort: si falta la configuración SMTP no hace nada.
func SendReservationEmail(email string, reservationID uint, totalPrice float64, checkInDate, checkOutDate string) error {
	host := config.GetEnv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port := config.GetEnvDefault("SMTP_PORT", "587")
	from := config.GetEnv("SMTP_USER")
	password := config.GetEnv("SMTP_PASSWORD")

	to := []string{email}
	subject := "Subject: Reserva creada\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Reserva creada</title>
		</head>
		<body>
			<p>Hola,</p>
			<p>Tu reserva fue creada correctamente.</p>
			<ul>
				<li>Número de reserva: <strong>%d</strong></li>
				<li>Check-in: <strong>%s</strong></li>
				<li>Check-out: <strong>%s</strong></li>
				<li>Precio total: <strong>$%.2f</strong></li>
			</ul>
			<p>Un empleado va a confirmarla a la brevedad.</p>
			<p>Gracias,<br>El equipo del hotel</p>
		</body>
		</html>
	`, reservationID, checkInDate, checkOutDate, totalPrice)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
