package controllers

import (
	"fmt"
	"sort"
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

type ReservationController struct {
	DB      *gorm.DB
	Redis   services.RedisStore
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB, redisCli services.RedisStore, service *services.ReservationService) ReservationController {
	return ReservationController{
		DB:      db,
		Redis:   redisCli,
		Service: service,
	}
}

func toReservationResponse(r models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID: r.ID,
		User: dto.ActorResponse{
			Name:        r.User.Name,
			Email:       r.User.Email,
			PhoneNumber: r.User.PhoneNumber,
		},
		Room: dto.ReservationRoomResponse{
			ID:       r.Room.RoomId,
			RoomName: r.Room.RoomName,
			Category: r.Room.Category,
			Price:    r.Room.Price,
			Avatar:   r.Room.Avatar,
		},
		CheckInDate:  r.CheckInDate.Format(constants.DateLayout),
		CheckOutDate: r.CheckOutDate.Format(constants.DateLayout),
		Guests:       r.Guests,
		Status:       r.Status,
		BasePrice:    r.BasePrice,
		ExtraPrice:   r.ExtraPrice,
		TotalPrice:   r.TotalPrice,
		CancelReason: r.CancelReason,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// invalidateCaches borra las claves de listado afectadas por una mutación.
// ownerID es el dueño de la reserva, no quien ejecuta la operación: el
// listado cacheado que queda viejo es el del huésped.
func (rc ReservationController) invalidateCaches(ownerID uint) {
	_ = services.DeleteFromRedis(config.Ctx, rc.Redis, "reservas:all")
	_ = services.DeleteFromRedis(config.Ctx, rc.Redis, fmt.Sprintf("reservas:user:%d", ownerID))
	_ = services.DeleteFromRedis(config.Ctx, rc.Redis, "habitaciones:all")
}

// CheckAvailability responde la consulta de disponibilidad previa a reservar
func (rc ReservationController) CheckAvailability(c *gin.Context) {
	roomIDStr := c.Query("roomId")
	roomID, err := strconv.ParseUint(roomIDStr, 10, 64)
	if err != nil || roomID == 0 {
		response.BadRequest(c, "roomId inválido")
		return
	}

	availability, err := services.CheckAvailability(rc.DB, uint(roomID), c.Query("checkInDate"), c.Query("checkOutDate"))
	if err != nil {
		respondAppError(c, err)
		return
	}

	resp := dto.AvailabilityResponse{Available: availability.Available}
	if !availability.Available && availability.ConflictID != 0 {
		resp.ConflictID = &availability.ConflictID
	}
	response.Success(c, resp)
}

// CalculatePrice responde el desglose del precio de una estadía
func (rc ReservationController) CalculatePrice(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	detail, err := services.CalculatePrice(rc.DB, req.RoomID, req.CheckInDate, req.CheckOutDate, req.Guests)
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, dto.PriceResponse{
		Nights:     detail.Nights,
		BasePrice:  detail.BasePrice,
		ExtraPrice: detail.ExtraPrice,
		TotalPrice: detail.TotalPrice,
	})
}

// Create crea la reserva en estado pendiente a nombre del usuario autenticado
func (rc ReservationController) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}
	if err := validator.ValidateReservationRequest(&req); err != nil {
		respondAppError(c, err)
		return
	}

	reservation, err := rc.Service.Create(userID, req)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if err := rc.DB.Preload("Room").Preload("User").First(reservation, reservation.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if reservation.User.Email != "" {
		if err := services.SendReservationEmail(reservation.User.Email, reservation.ID, reservation.TotalPrice,
			req.CheckInDate, req.CheckOutDate); err != nil {
			fmt.Println("No se pudo enviar el mail de reserva:", err)
		}
	}

	rc.invalidateCaches(userID)
	response.Success(c, toReservationResponse(*reservation))
}

// List devuelve las reservas visibles para el usuario, cacheadas por rol
func (rc ReservationController) List(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var cacheKey string
	if role == constants.RoleGuest {
		cacheKey = fmt.Sprintf("reservas:user:%d", userID)
	} else {
		cacheKey = "reservas:all"
	}

	var reservations []models.Reservation
	if err := services.GetFromRedis(config.Ctx, rc.Redis, cacheKey, &reservations); err != nil || len(reservations) == 0 {
		tx := rc.DB.Model(&models.Reservation{}).Preload("Room").Preload("User")
		if role == constants.RoleGuest {
			tx = tx.Where("user_id = ?", userID)
		}
		if err := tx.Find(&reservations).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, rc.Redis, cacheKey, reservations, 10*time.Minute); err != nil {
			fmt.Println("No se pudo cachear el listado de reservas:", err)
		}
	}

	// filtros por query
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	filtered := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if statusFilter != "" {
			parsed, err := strconv.Atoi(statusFilter)
			if err == nil && r.Status != parsed {
				continue
			}
		}
		if fromDateStr != "" {
			from, err := time.Parse(constants.DateLayout, fromDateStr)
			if err != nil {
				response.BadRequest(c, "fromDate inválido")
				return
			}
			if r.CheckInDate.Before(from) {
				continue
			}
		}
		if toDateStr != "" {
			to, err := time.Parse(constants.DateLayout, toDateStr)
			if err != nil {
				response.BadRequest(c, "toDate inválido")
				return
			}
			if r.CheckOutDate.After(to) {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	// paginación
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
		filtered = []models.Reservation{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	result := make([]dto.ReservationResponse, 0, len(filtered))
	for _, r := range filtered {
		result = append(result, toReservationResponse(r))
	}
	response.SuccessWithPagination(c, result, page, limit, total)
}

// Detail devuelve una reserva si el usuario puede verla
func (rc ReservationController) Detail(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	reservation, err := rc.Service.GetByID(uint(id), userID, role)
	if err != nil {
		respondAppError(c, err)
		return
	}
	response.Success(c, toReservationResponse(*reservation))
}

// Confirm pasa la reserva a confirmada (empleado/admin)
func (rc ReservationController) Confirm(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	reservation, err := rc.Service.Confirm(uint(id), role)
	if err != nil {
		respondAppError(c, err)
		return
	}

	rc.invalidateCaches(reservation.UserID)
	response.Success(c, toReservationResponse(*reservation))
}

// Cancel cancela la reserva (huésped la propia, admin cualquiera)
func (rc ReservationController) Cancel(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	var req dto.CancelReservationRequest
	// el body es opcional: cancelar sin motivo es válido
	_ = c.ShouldBindJSON(&req)

	reservation, err := rc.Service.Cancel(uint(id), userID, role, req.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	rc.invalidateCaches(reservation.UserID)
	response.Success(c, toReservationResponse(*reservation))
}

// CheckIn registra la llegada del huésped
func (rc ReservationController) CheckIn(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	reservation, err := rc.Service.CheckIn(uint(id), role)
	if err != nil {
		respondAppError(c, err)
		return
	}

	rc.invalidateCaches(reservation.UserID)
	response.Success(c, toReservationResponse(*reservation))
}

// CheckOut cierra la estadía y devuelve los puntos de fidelidad otorgados
func (rc ReservationController) CheckOut(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id inválido")
		return
	}

	reservation, points, err := rc.Service.CheckOut(uint(id), role)
	if err != nil {
		respondAppError(c, err)
		return
	}

	rc.invalidateCaches(reservation.UserID)
	response.Success(c, dto.CheckOutResponse{
		Reservation:   toReservationResponse(*reservation),
		LoyaltyPoints: points,
	})
}
