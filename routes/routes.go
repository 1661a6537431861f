package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sreepix-backend/config"
	"sreepix-backend/controllers"
	"sreepix-backend/utils"
)

func SetupRouter(auth *controllers.AuthController, svc *controllers.ServiceController, booking *controllers.BookingController) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://sreepix.in",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Reminders-Attempted", "X-Reminders-Created", "X-Confirmation-Sent"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.POST("/auth/login", auth.Login)

	api := r.Group("/api")
	{
		// Public: the site reads the catalog and submits enquiries without auth.
		api.GET("/services", svc.GetServices)
		api.POST("/enquiries", booking.CreateEnquiry)

		owner := api.Group("")
		owner.Use(utils.AuthMiddleware())
		{
			// Catalog administration
			owner.PUT("/services", svc.ReplaceServices)
			owner.POST("/services/items", svc.CreateService)
			owner.PUT("/services/items/:id", svc.UpdateService)
			owner.DELETE("/services/items/:id", svc.DeleteService)

			// Booking: invoice + reminders
			owner.POST("/bookings", booking.CreateBooking)

			owner.GET("/calendar/test", booking.TestCalendar)
		}
	}

	return r
}
