package routes

import (
	"net/http"
	"time"

	"coachly/handlers"
	"coachly/middleware"
	"coachly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability/:coachID", hb.GetAvailableSlotsHandler)
		api.GET("/session-types", hb.ListSessionTypesHandler)
	}
}

// RegisterBookingRoutes sets up the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.DELETE("/:bookingID", hb.CancelBookingHandler)
	}
}

// RegisterAdminRoutes sets up the operator endpoints. Everything except
// login requires a valid admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)

		// Protected routes (Require Authentication)
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.POST("/logout", hb.AdminLogoutHandler)

		adminGroup.POST("/rules", hb.CreateRuleHandler)
		adminGroup.GET("/rules/:coachID", hb.ListRulesHandler)
		adminGroup.PATCH("/rules/:ruleID", hb.UpdateRuleHandler)
		adminGroup.DELETE("/rules/:ruleID", hb.DeleteRuleHandler)

		adminGroup.POST("/exceptions", hb.CreateExceptionHandler)
		adminGroup.GET("/exceptions/:coachID", hb.ListExceptionsHandler)
		adminGroup.DELETE("/exceptions/:exceptionID", hb.DeleteExceptionHandler)

		adminGroup.PUT("/session-types", hb.UpsertSessionTypeHandler)
		adminGroup.DELETE("/session-types/:key", hb.DeleteSessionTypeHandler)

		adminGroup.GET("/bookings/:coachID", hb.ListBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
