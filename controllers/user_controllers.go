package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
	"github.com/abigaildinucci5-hue/tp-final-sub001/validator"
)

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role,
		Status:        user.Status,
		Avatar:        user.Avatar,
		OAuthProvider: user.OAuthProvider,
		LoyaltyPoints: user.LoyaltyPoints,
		RoomIDs:       user.RoomIDs,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// GetProfile devuelve el perfil del usuario autenticado
func GetProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Usuario no encontrado")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// UpdateProfile edita nombre, teléfono y avatar del usuario autenticado
func UpdateProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := validator.ValidateUser(&user); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

// GetAllUsers lista usuarios con filtro por rol y estado (solo admin)
func GetAllUsers(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageUsers(role) {
		response.Forbidden(c)
		return
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	tx := config.DB.Model(&models.User{})
	if roleStr := c.Query("role"); roleStr != "" {
		if parsed, err := strconv.Atoi(roleStr); err == nil {
			tx = tx.Where("role = ?", parsed)
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if parsed, err := strconv.Atoi(statusStr); err == nil {
			tx = tx.Where("status = ?", parsed)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := tx.Order("id").Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}
	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// UpdateUserRole cambia el rol de un usuario (solo admin)
func UpdateUserRole(c *gin.Context) {
	adminID, role, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageUsers(role) {
		response.Forbidden(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}
	if uint(id) == adminID {
		response.ValidationError(c, "No podés cambiar tu propio rol")
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}
	if err := validator.ValidateRole(req.Role); err != nil {
		respondAppError(c, err)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Usuario no encontrado")
			return
		}
		response.ServerError(c)
		return
	}

	updates := map[string]interface{}{"role": req.Role}
	if req.Role != constants.RoleEmployee {
		// las habitaciones asignadas solo aplican a empleados
		updates["room_ids"] = pq.Int64Array{}
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	user.Role = req.Role
	response.Success(c, toUserResponse(user))
}

// ChangeUserStatus habilita o deshabilita una cuenta (solo admin)
func ChangeUserStatus(c *gin.Context) {
	adminID, role, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageUsers(role) {
		response.Forbidden(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}
	if uint(id) == adminID {
		response.ValidationError(c, "No podés deshabilitar tu propia cuenta")
		return
	}

	var req struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}
	if req.Status != constants.UserStatusInactive && req.Status != constants.UserStatusActive {
		response.ValidationError(c, "Estado inválido")
		return
	}

	result := config.DB.Model(&models.User{}).Where("id = ?", id).Update("status", req.Status)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Usuario no encontrado")
		return
	}

	response.Success(c, gin.H{"id": id, "status": req.Status})
}
