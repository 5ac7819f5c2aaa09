package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
	"github.com/abigaildinucci5-hue/tp-final-sub001/validator"
)

func toCommentResponse(comment models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:     comment.ID,
		RoomID: comment.RoomID,
		User: dto.ActorResponse{
			Name:        comment.User.Name,
			Email:       comment.User.Email,
			PhoneNumber: comment.User.PhoneNumber,
		},
		Star:      comment.Star,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// GetCommentsByRoom lista los comentarios de una habitación, los más nuevos primero
func GetCommentsByRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
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

	var total int64
	if err := config.DB.Model(&models.Comment{}).Where("room_id = ?", roomID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var comments []models.Comment
	if err := config.DB.Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&comments).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentResponse(comment))
	}
	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// CreateComment deja un comentario sobre una habitación
func CreateComment(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}
	if err := validator.ValidateComment(&req); err != nil {
		respondAppError(c, err)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Habitación no encontrada")
			return
		}
		response.ServerError(c)
		return
	}

	comment := models.Comment{
		RoomID: req.RoomID,
		UserID: userID,
		Star:   req.Star,
		Text:   req.Text,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Preload("User").First(&comment, comment.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCommentResponse(comment))
}

// DeleteComment borra un comentario. El autor puede borrar el suyo, el admin cualquiera.
func DeleteComment(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	var comment models.Comment
	if err := config.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Comentario no encontrado")
			return
		}
		response.ServerError(c)
		return
	}

	if !services.CanDeleteComment(role, comment.UserID == userID) {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": comment.ID})
}
