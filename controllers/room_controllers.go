package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
	"github.com/abigaildinucci5-hue/tp-final-sub001/validator"
)

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:              room.RoomId,
		RoomName:        room.RoomName,
		Category:        room.Category,
		Price:           room.Price,
		BaseCapacity:    room.BaseCapacity,
		MaxCapacity:     room.MaxCapacity,
		ExtraGuestPrice: room.ExtraGuestPrice,
		Description:     room.Description,
		Avatar:          room.Avatar,
		Img:             room.Img,
		Status:          room.Status,
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}
}

// GetAllRooms lista habitaciones con cache, filtros y búsqueda difusa por texto
func GetAllRooms(c *gin.Context) {
	var allRooms []models.Room

	cacheKey := "habitaciones:all"
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &allRooms); err != nil || len(allRooms) == 0 {
		if err := config.DB.Find(&allRooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, allRooms, 10*time.Minute); err != nil {
			fmt.Println("No se pudo cachear el listado de habitaciones:", err)
		}
	}

	statusFilter := c.Query("status")
	categoryFilter := c.Query("category")
	maxPriceStr := c.Query("maxPrice")
	guestsStr := c.Query("guests")

	filtered := make([]models.Room, 0, len(allRooms))
	for _, room := range allRooms {
		if statusFilter == "" && room.Status == constants.RoomStatusInactive {
			// las dadas de baja no aparecen en el listado público
			continue
		}
		if statusFilter != "" {
			parsed, err := strconv.Atoi(statusFilter)
			if err == nil && room.Status != parsed {
				continue
			}
		}
		if categoryFilter != "" && services.NormalizeQuery(room.Category) != services.NormalizeQuery(categoryFilter) {
			continue
		}
		if maxPriceStr != "" {
			maxPrice, err := strconv.Atoi(maxPriceStr)
			if err == nil && room.Price > maxPrice {
				continue
			}
		}
		if guestsStr != "" {
			guests, err := strconv.Atoi(guestsStr)
			if err == nil && room.MaxCapacity < guests {
				continue
			}
		}
		filtered = append(filtered, room)
	}

	// búsqueda difusa por texto libre (insensible a acentos)
	if q := c.Query("q"); q != "" {
		filtered = services.SearchRooms(q, filtered)
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

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Room{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	result := make([]dto.RoomResponse, 0, len(filtered))
	for _, room := range filtered {
		result = append(result, toRoomResponse(room))
	}
	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetRoomDetail devuelve una habitación por id. Los comentarios se
// sirven aparte en GET /habitaciones/:id/comentarios
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Habitación no encontrada")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toRoomResponse(room))
}

// CreateRoom da de alta una habitación (solo admin)
func CreateRoom(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageRooms(role) {
		response.Forbidden(c)
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}
	if err := validator.ValidateRoom(&req); err != nil {
		respondAppError(c, err)
		return
	}

	room := models.Room{
		RoomName:        req.RoomName,
		Category:        req.Category,
		Price:           req.Price,
		BaseCapacity:    req.BaseCapacity,
		MaxCapacity:     req.MaxCapacity,
		ExtraGuestPrice: req.ExtraGuestPrice,
		Description:     req.Description,
		Avatar:          req.Avatar,
		Img:             req.Img,
		Status:          constants.RoomStatusAvailable,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "habitaciones:all")
	response.Success(c, toRoomResponse(room))
}

// UpdateRoom edita los campos de una habitación (solo admin)
func UpdateRoom(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageRooms(role) {
		response.Forbidden(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Habitación no encontrada")
			return
		}
		response.ServerError(c)
		return
	}

	if req.RoomName != "" {
		room.RoomName = req.RoomName
	}
	if req.Category != "" {
		room.Category = req.Category
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.BaseCapacity != nil {
		room.BaseCapacity = *req.BaseCapacity
	}
	if req.MaxCapacity != nil {
		room.MaxCapacity = *req.MaxCapacity
	}
	if req.ExtraGuestPrice != nil {
		room.ExtraGuestPrice = *req.ExtraGuestPrice
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Avatar != "" {
		room.Avatar = req.Avatar
	}
	if len(req.Img) > 0 {
		room.Img = req.Img
	}

	if room.MaxCapacity < room.BaseCapacity {
		response.ValidationError(c, "La capacidad máxima no puede ser menor a la base")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "habitaciones:all")
	response.Success(c, toRoomResponse(room))
}

// ChangeRoomStatus cambia el estado de la habitación. La baja es lógica
// (estado inactiva): nunca se borra una habitación con reservas.
func ChangeRoomStatus(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	if !services.CanManageRooms(role) {
		response.Forbidden(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Habitación no encontrada")
			return
		}
		response.ServerError(c)
		return
	}

	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Model(&models.Room{}).Where("room_id = ?", id).
		Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, "habitaciones:all")
	response.Success(c, gin.H{"id": room.RoomId, "status": req.Status})
}
