package routes

import (
	"net/http"
	"time"

	"bookmyservice/config"
	"bookmyservice/handlers"
	"bookmyservice/middleware"
	"bookmyservice/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.POST("/email-verify", hb.VerifyEmailHandler)
		api.POST("/change-password", hb.ChangePasswordHandler)

		api.POST("/logout", middleware.AuthMiddleware(), hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("/register", hb.RegisterHandler)

		// Protected routes (require authentication).
		api.Use(middleware.AuthMiddleware())
		api.GET("/profile/:userId", hb.GetUserHandler)
		api.GET("/profile", middleware.RequireRoles(models.RoleAdmin), hb.GetAllUsersHandler)
		api.PUT("/edit/:userId", hb.UpdateUserHandler)
		api.DELETE("/delete/:userId", hb.DeleteUserHandler)
		api.POST("/profile-picture", hb.UploadProfilePictureHandler)
	}
}

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/service")
	{
		// Public catalog browsing.
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:serviceId", hb.GetServiceHandler)
		api.GET("/services/:serviceId/bookingTimes", hb.GetServiceWindowsHandler)

		api.GET("/user-services", middleware.AuthMiddleware(), hb.ListMyServicesHandler)

		manage := api.Group("")
		manage.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin, models.RoleProvider))
		manage.POST("/create", hb.CreateServiceHandler)
		manage.PUT("/edit/:serviceId", hb.EditServiceHandler)
		manage.DELETE("/delete/:serviceId", hb.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/create", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.CreateBookingHandler)
		api.PUT("/edit/:bookingId", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.EditBookingHandler)
		api.DELETE("/delete/:bookingId", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.DeleteBookingHandler)
		api.GET("/get/:consumerId", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.GetUserBookingsHandler)
		api.GET("/get", middleware.RequireRoles(models.RoleAdmin), hb.GetAllBookingsHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/review")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/create", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.CreateReviewHandler)
		api.PUT("/edit/:reviewId", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.EditReviewHandler)
		api.DELETE("/delete/:reviewId", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.DeleteReviewHandler)
		api.GET("/get/:reviewId", middleware.RequireRoles(models.RoleAdmin, models.RoleConsumer), hb.GetReviewHandler)
		api.GET("/get", middleware.RequireRoles(models.RoleAdmin), hb.GetAllReviewsHandler)
	}
}

// RegisterSubscriptionRoutes registers subscription endpoints.
func RegisterSubscriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/subscription")
	{
		api.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin, models.RoleProvider))
		api.POST("/create", hb.CreateSubscriptionHandler)
		api.GET("/provider/:providerId", hb.GetProviderSubscriptionsHandler)
		api.PUT("/edit/:subscriptionId", hb.EditSubscriptionHandler)
		api.DELETE("/delete/:subscriptionId", hb.DeleteSubscriptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BookMyService"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterSubscriptionRoutes(r, hb)
}
