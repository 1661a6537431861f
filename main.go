package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sreepix-backend/config"
	"sreepix-backend/controllers"
	"sreepix-backend/routes"
	"sreepix-backend/services"
	"sreepix-backend/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg := config.Load()

	var store storage.CatalogStore
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect database")
		}
		gormStore, err := storage.NewGormStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare catalog table")
		}
		store = gormStore
		log.Info().Msg("catalog store: postgres")
	} else {
		fileStore := storage.NewFileStore(cfg.CatalogPath)
		store = fileStore
		log.Info().Str("path", fileStore.Path()).Msg("catalog store: file")

		backups := services.NewBackupService(store, "")
		backups.StartScheduler()
	}

	authCtl := &controllers.AuthController{Cfg: cfg}
	serviceCtl := &controllers.ServiceController{Store: store}
	bookingCtl := &controllers.BookingController{
		Store:    store,
		Invoices: services.NewInvoiceService(cfg),
		Calendar: services.NewCalendarService(cfg),
		SMS:      services.NewSMSService(cfg),
	}

	r := routes.SetupRouter(authCtl, serviceCtl, bookingCtl)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
