package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abigaildinucci5-hue/tp-final-sub001/config"
	"github.com/abigaildinucci5-hue/tp-final-sub001/jobs"
	middlewares "github.com/abigaildinucci5-hue/tp-final-sub001/middleware"
	"github.com/abigaildinucci5-hue/tp-final-sub001/models"
	"github.com/abigaildinucci5-hue/tp-final-sub001/routes"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services/logger"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Room{}, &models.Reservation{}, &models.Comment{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se pudo leer el archivo .env, se usan las variables de entorno: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	reservationService := services.NewReservationService(services.ReservationServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})

	migrateTables()

	if err := jobs.InitCronJobs(c, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	router.Use(middlewares.SessionMiddleware())

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, reservationService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
