package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
)

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// respondAppError traduce la taxonomía de AppError al status HTTP. Todo
// error se recupera acá: nunca se voltea el proceso por un request.
func respondAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		response.NotFound(c, appErr.Message)
	case apperrors.IsConflict(err):
		response.Conflict(c, appErr.Message)
	case appErr.Code == apperrors.ErrCodeForbidden:
		response.Forbidden(c)
	case appErr.Code == apperrors.ErrCodeInvalidSession:
		response.SessionExpired(c)
	case apperrors.IsAuthError(err):
		response.Error(c, http.StatusUnauthorized, string(appErr.Code), appErr.Message)
	case appErr.Code == apperrors.ErrCodeDBError:
		response.ServerError(c)
	default:
		// validación y formato
		response.ValidationError(c, appErr.Message)
	}
}

// currentUser saca la identidad que dejó el AuthMiddleware en el contexto
func currentUser(c *gin.Context) (uint, int, bool) {
	userID, okID := c.Get("userID")
	userRole, okRole := c.Get("userRole")
	if !okID || !okRole {
		response.Unauthorized(c)
		return 0, 0, false
	}
	return userID.(uint), userRole.(int), true
}
