package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
	"github.com/abigaildinucci5-hue/tp-final-sub001/validator"
)

func toUserLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		UserPhone:     user.PhoneNumber,
		UserRole:      user.Role,
		UserAvatar:    user.Avatar,
		OAuthProvider: user.OAuthProvider,
		LoyaltyPoints: user.LoyaltyPoints,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// issueSession genera el par de tokens y registra la sesión en Redis
func issueSession(c *gin.Context, user models.User) (services.TokenPair, bool) {
	pair, err := services.GenerateTokenPair(services.UserInfo{UserId: user.ID, Role: user.Role})
	if err != nil {
		response.ServerError(c)
		return services.TokenPair{}, false
	}
	ttl := services.RefreshTokenDays * 24 * 60 * 60
	if err := services.StoreRefreshSession(config.Ctx, config.RedisClient, pair.SessionID, user.ID, secondsToDuration(ttl)); err != nil {
		response.ServerError(c)
		return services.TokenPair{}, false
	}
	return pair, true
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	if err := validator.ValidateRegister(&input); err != nil {
		respondAppError(c, err)
		return
	}

	user, err := services.CreateUser(config.DB, input)
	if err != nil {
		respondAppError(c, err)
		return
	}

	pair, ok := issueSession(c, user)
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"user_info":    toUserLoginResponse(user),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	user, err := services.Authenticate(config.DB, input.Email, input.Password)
	if err != nil {
		respondAppError(c, err)
		return
	}

	pair, ok := issueSession(c, user)
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"user_info":    toUserLoginResponse(user),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// RefreshToken rota el refresh token: es de un solo uso, con ventana de
// gracia de 30 segundos para pedidos concurrentes (ver session_store)
func RefreshToken(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	claims, err := services.ParseRefreshToken(input.RefreshToken)
	if err != nil {
		response.SessionExpired(c)
		return
	}

	sessionID := claims.StandardClaims.Id
	userID, err := services.ConsumeRefreshSession(config.Ctx, config.RedisClient, sessionID)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeInvalidSession) {
			// puede ser un refresh concurrente que perdió la carrera:
			// dentro de la ventana de gracia devuelve el mismo par
			if pair, ok, gerr := services.GetGracePair(config.Ctx, config.RedisClient, sessionID); gerr == nil && ok {
				response.Success(c, dto.TokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
				return
			}
			response.SessionExpired(c)
			return
		}
		response.ServerError(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.SessionExpired(c)
		return
	}

	pair, err := services.GenerateTokenPair(services.UserInfo{UserId: user.ID, Role: user.Role})
	if err != nil {
		response.ServerError(c)
		return
	}
	ttl := services.RefreshTokenDays * 24 * 60 * 60
	if err := services.StoreRefreshSession(config.Ctx, config.RedisClient, pair.SessionID, user.ID, secondsToDuration(ttl)); err != nil {
		response.ServerError(c)
		return
	}
	// si falla solo se pierde la tolerancia a refresh concurrente
	_ = services.SaveGracePair(config.Ctx, config.RedisClient, sessionID, pair)

	response.Success(c, dto.TokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Logout revoca la sesión asociada al access token. Idempotente: repetir
// el logout con un token ya inválido no es un error.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseAccessToken(tokenString)
		// con token vencido igual se revoca: los claims vienen poblados
		if claims != nil && (err == nil || apperrors.HasCode(err, apperrors.ErrCodeTokenExpired)) {
			_ = services.RevokeRefreshSession(config.Ctx, config.RedisClient, claims.SessionID)
		}
	}

	response.Success(c, nil)
}

// AuthGoogle recibe el ID token de Google, lo valida y emite la sesión local
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	identity, err := services.VerifyGoogleIDToken(c.Request.Context(), input.TokenId)
	if err != nil {
		respondAppError(c, err)
		return
	}

	user, err := services.UpsertOAuthUser(config.DB, "google", identity)
	if err != nil {
		respondAppError(c, err)
		return
	}

	pair, ok := issueSession(c, user)
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"user_info":    toUserLoginResponse(user),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// AuthGitHub recibe el authorization code del callback y emite la sesión local
func AuthGitHub(c *gin.Context) {
	var input dto.GitHubAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	identity, err := services.ExchangeGitHubCode(c.Request.Context(), input.Code)
	if err != nil {
		respondAppError(c, err)
		return
	}

	user, err := services.UpsertOAuthUser(config.DB, "github", identity)
	if err != nil {
		respondAppError(c, err)
		return
	}

	pair, ok := issueSession(c, user)
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"user_info":    toUserLoginResponse(user),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}
