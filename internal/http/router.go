package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"legalease/internal/config"
	"legalease/internal/domain"
	h "legalease/internal/http/handlers"
	"legalease/internal/http/middleware"
)

func NewRouter(env config.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.Static("/uploads", env.UploadsDir)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.RegisterCustomer)
		auth.POST("/register-lawyer", h.RegisterLawyer)

		// Public reads
		api.GET("/cities", h.GetCities)
		api.GET("/news", h.GetNews)
		api.GET("/news/:id", h.GetNewsByID)
		api.GET("/reviews", h.GetReviews)

		// Lawyers: browse is public, availability too; writes are protected.
		lawyers := api.Group("/lawyers")
		lawyers.GET("", middleware.OptionalAuth(), h.GetLawyers)
		lawyers.GET("/:id", h.GetLawyerByID)
		lawyers.GET("/:id/availability", h.GetLawyerAvailability)
		lawyers.GET("/:id/weekly-overview", h.GetLawyerWeeklyOverview)
		lawyers.GET("/:id/schedule", h.GetLawyerSchedule)
		lawyers.PUT("/:id/schedule", middleware.Auth(), middleware.RequireRoles(domain.RoleLawyer, domain.RoleAdmin), h.ReplaceLawyerSchedule)
		lawyers.POST("", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.CreateLawyer)
		lawyers.PUT("/:id", middleware.Auth(), middleware.RequireRoles(domain.RoleLawyer, domain.RoleAdmin), h.UpdateLawyer)
		lawyers.DELETE("/:id", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.DeleteLawyer)
		lawyers.PUT("/:id/approve", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.ApproveLawyer)
		lawyers.PUT("/:id/reject", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.RejectLawyer)

		// Customers
		customers := api.Group("/customers", middleware.Auth())
		customers.GET("", middleware.RequireRoles(domain.RoleAdmin), h.GetCustomers)
		customers.GET("/:id", h.GetCustomerByID)
		customers.POST("", middleware.RequireRoles(domain.RoleAdmin), h.CreateCustomer)
		customers.PUT("/:id", middleware.RequireRoles(domain.RoleCustomer, domain.RoleAdmin), h.UpdateCustomer)
		customers.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.DeleteCustomer)

		// Appointments
		appointments := api.Group("/appointments", middleware.Auth())
		appointments.GET("", h.GetAppointments)
		appointments.GET("/:id", h.GetAppointmentByID)
		appointments.POST("", middleware.RequireRoles(domain.RoleCustomer, domain.RoleAdmin), h.CreateAppointment)
		appointments.PATCH("/:id", h.PatchAppointment)
		appointments.PUT("/:id/approve", middleware.RequireRoles(domain.RoleLawyer, domain.RoleAdmin), h.ApproveAppointment)
		appointments.PUT("/:id/reject", middleware.RequireRoles(domain.RoleLawyer, domain.RoleAdmin), h.RejectAppointment)
		appointments.PUT("/:id/complete", middleware.RequireRoles(domain.RoleLawyer, domain.RoleAdmin), h.CompleteAppointment)
		appointments.PUT("/:id/cancel", middleware.RequireRoles(domain.RoleCustomer, domain.RoleAdmin), h.CancelAppointment)
		appointments.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.DeleteAppointment)

		// Transactions
		transactions := api.Group("/transactions", middleware.Auth())
		transactions.GET("", h.GetTransactions)
		transactions.GET("/:id", h.GetTransactionByID)
		transactions.POST("", middleware.RequireRoles(domain.RoleCustomer, domain.RoleAdmin), h.CreateTransaction)
		transactions.PUT("/:id/status", middleware.RequireRoles(domain.RoleAdmin), h.SetTransactionStatus)
		transactions.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), h.DeleteTransaction)
		transactions.GET("/:id/receipt", h.GetTransactionReceiptPDF)

		// Reviews (write side needs a customer)
		api.POST("/reviews", middleware.Auth(), middleware.RequireRoles(domain.RoleCustomer), h.CreateReview)

		// News management
		api.POST("/news", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.CreateNews)
		api.PUT("/news/:id", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.ReplaceNews)
		api.DELETE("/news/:id", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin), h.DeleteNews)

		// Reports (admin); lawyers can pull their own income via lawyer_id
		reports := api.Group("/reports", middleware.Auth(), middleware.RequireRoles(domain.RoleAdmin, domain.RoleLawyer))
		reports.GET("/income", h.GetIncomeReport)
		reports.GET("/transactions", middleware.RequireRoles(domain.RoleAdmin), h.GetTransactionReport)

		// Uploads
		api.POST("/uploads", middleware.Auth(), h.UploadFile(env.UploadsDir))
	}

	return r
}
