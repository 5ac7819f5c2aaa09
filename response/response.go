package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response define la estructura de respuesta
type Response struct {
	Code       int         `json:"code"`
	Mensaje    string      `json:"mensaje"`
	ErrorCode  string      `json:"errorCode,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination define la estructura de paginación
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success devuelve una respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    1,
		Mensaje: "Éxito",
		Data:    data,
	})
}

// SuccessWithPagination devuelve una respuesta exitosa paginada
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code:    1,
		Mensaje: "Éxito",
		Data:    data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error devuelve una respuesta de error genérica
func Error(c *gin.Context, status int, errorCode, message string) {
	c.JSON(status, Response{
		Code:      0,
		Mensaje:   message,
		ErrorCode: errorCode,
	})
}

// ServerError devuelve un error de servidor
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:    0,
		Mensaje: "Error del servidor",
	})
}

// Unauthorized devuelve 401 sin autenticación
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    0,
		Mensaje: "No autenticado",
	})
}

// TokenExpired devuelve 401 con código distinguible para que el cliente
// intente un único refresh antes de cortar la sesión
func TokenExpired(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:      0,
		Mensaje:   "Token expirado",
		ErrorCode: "TOKEN_EXPIRADO",
	})
}

// SessionExpired devuelve 401 cuando el refresh ya no es válido
func SessionExpired(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:      0,
		Mensaje:   "Sesión expirada, volvé a iniciar sesión",
		ErrorCode: "SESION_EXPIRADA",
	})
}

// Forbidden devuelve 403 sin permisos
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:    0,
		Mensaje: "No tenés permisos para esta acción",
	})
}

// NotFound devuelve 404
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code:    0,
		Mensaje: message,
	})
}

// ValidationError devuelve 400 por datos inválidos
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    0,
		Mensaje: message,
	})
}

// BadRequest devuelve 400
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    0,
		Mensaje: message,
	})
}

// Conflict devuelve 409 (carrera perdida o transición inválida)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code:    0,
		Mensaje: message,
	})
}
