package routes

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/abigaildinucci5-hue/tp-final-sub001/constants"
	"github.com/abigaildinucci5-hue/tp-final-sub001/controllers"
	middlewares "github.com/abigaildinucci5-hue/tp-final-sub001/middleware"
	"github.com/abigaildinucci5-hue/tp-final-sub001/response"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, reservationService *services.ReservationService) {

	reservationController := controllers.NewReservationController(db, redisCli, reservationService)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/registro", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/refresh-token", controllers.RefreshToken)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/auth/github/callback", controllers.AuthGitHub)

	v1.GET("/habitaciones", controllers.GetAllRooms)
	v1.GET("/habitaciones/:id", controllers.GetRoomDetail)
	v1.POST("/habitaciones", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/habitaciones/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	v1.PUT("/habitaciones/:id/estado", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ChangeRoomStatus)

	v1.GET("/habitaciones/:id/comentarios", controllers.GetCommentsByRoom)
	v1.POST("/comentarios", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), controllers.CreateComment)
	v1.DELETE("/comentarios/:id", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), controllers.DeleteComment)

	v1.GET("/reservas/verificar-disponibilidad", reservationController.CheckAvailability)
	v1.POST("/reservas/calcular-precio", reservationController.CalculatePrice)
	v1.POST("/reservas", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), reservationController.Create)
	v1.GET("/reservas", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), reservationController.List)
	v1.GET("/reservas/:id", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), reservationController.Detail)
	v1.POST("/reservas/:id/confirmar", middlewares.AuthMiddleware(constants.RoleEmployee, constants.RoleAdmin), reservationController.Confirm)
	v1.POST("/reservas/:id/check-in", middlewares.AuthMiddleware(constants.RoleEmployee, constants.RoleAdmin), reservationController.CheckIn)
	v1.POST("/reservas/:id/check-out", middlewares.AuthMiddleware(constants.RoleEmployee, constants.RoleAdmin), reservationController.CheckOut)
	v1.DELETE("/reservas/:id", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleAdmin), reservationController.Cancel)

	v1.GET("/perfil", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), controllers.GetProfile)
	v1.PUT("/perfil", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), controllers.UpdateProfile)
	v1.GET("/usuarios", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAllUsers)
	v1.PUT("/usuarios/:id/rol", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateUserRole)
	v1.PUT("/usuarios/:id/estado", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ChangeUserStatus)

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleEmployee, constants.RoleAdmin), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "No se recibió ningún archivo")
			return
		}
		if err := services.ValidateUpload(file.Header.Get("Content-Type"), file.Size); err != nil {
			response.ValidationError(c, err.Error())
			return
		}

		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "No se pudo abrir el archivo")
			return
		}
		defer src.Close()

		path, err := services.StageTempFile(src)
		if err != nil {
			response.ServerError(c)
			return
		}
		defer os.Remove(path)

		url, err := services.UploadImage(c.Request.Context(), cld, path, "avatars")
		if err != nil {
			response.ServerError(c)
			return
		}

		response.Success(c, gin.H{"url": url})
	})

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "No se recibió ningún archivo")
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			response.BadRequest(c, "No se recibió ningún archivo")
			return
		}

		var urls []string
		for _, file := range files {
			if err := services.ValidateUpload(file.Header.Get("Content-Type"), file.Size); err != nil {
				response.ValidationError(c, err.Error())
				return
			}

			src, err := file.Open()
			if err != nil {
				response.BadRequest(c, "No se pudo abrir el archivo")
				return
			}

			path, err := services.StageTempFile(src)
			src.Close()
			if err != nil {
				response.ServerError(c)
				return
			}

			url, err := services.UploadImage(c.Request.Context(), cld, path, "habitaciones")
			os.Remove(path)
			if err != nil {
				response.ServerError(c)
				return
			}
			urls = append(urls, url)
		}

		response.Success(c, gin.H{"urls": urls})
	})
}
