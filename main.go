package main

import (
	"fmt"
	"log"
	"os"

	_ "eventscheduler/docs"
	"eventscheduler/internal/handlers"
	"eventscheduler/internal/storage"
	"eventscheduler/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title			Event Scheduler API
// @Description	REST API for scheduling events, persisted to a flat JSON file.
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Loading .env")
		if err := godotenv.Load(); err != nil {
			log.Println("WARN: no .env file loaded:", err.Error())
		}
	}

	eventsFile := os.Getenv("EVENTS_FILE")
	if eventsFile == "" {
		eventsFile = "events.json"
	}

	fileStore := storage.NewFileStore(eventsFile)
	eventStore := store.NewEventStore(fileStore.Load(), fileStore)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.NewEventHandler(eventStore).Register(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start... ", err.Error())
	}
}
