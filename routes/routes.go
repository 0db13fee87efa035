package routes

import (
	"os"
	"strings"

	"virtualoffice-backend/config"
	"virtualoffice-backend/controllers"
	"virtualoffice-backend/models"
	"virtualoffice-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/kana-groups", controllers.GetKanaGroups)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.POST("/:id/cancel", controllers.CancelCustomer)
			customers.POST("/:id/reactivate", controllers.ReactivateCustomer)
		}

		// Service routes
		srvs := api.Group("/services")
		{
			srvs.POST("", controllers.CreateService)
			srvs.GET("", controllers.GetServices)
			srvs.GET("/:id", controllers.GetService)
			srvs.PUT("/:id", controllers.UpdateService)
			srvs.DELETE("/:id", controllers.DeleteService)
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.POST("", controllers.CreateCategory)
			categories.GET("", controllers.GetCategories)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		// Shipping cost routes
		shipping := api.Group("/shipping-costs")
		{
			shipping.POST("", controllers.CreateShippingCost)
			shipping.GET("", controllers.GetShippingCosts)
			shipping.PUT("/:id", controllers.UpdateShippingCost)
			shipping.DELETE("/:id", controllers.DeleteShippingCost)
		}

		// Service log routes
		logs := api.Group("/service-logs")
		{
			logs.POST("", controllers.CreateServiceLog)
			logs.GET("", controllers.GetServiceLogs)
			logs.GET("/:id", controllers.GetServiceLog)
			logs.PUT("/:id", controllers.UpdateServiceLog)
			logs.DELETE("/:id", controllers.DeleteServiceLog)
			logs.POST("/:id/images", controllers.AddLogImage)
			logs.DELETE("/:id/images/:imageId", controllers.RemoveLogImage)
			logs.POST("/:id/publish", controllers.PublishServiceLog)
			logs.POST("/:id/unpublish", controllers.UnpublishServiceLog)
		}

		// Inquiry routes
		inquiries := api.Group("/inquiries")
		{
			inquiries.GET("", controllers.GetInquiries)
			inquiries.PUT("/:id/resolve", controllers.ResolveInquiry)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Address prefill
		api.GET("/address/:postalCode", controllers.LookupAddress)
	}

	portal := r.Group("/portal")
	portal.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleUser))
	{
		portal.GET("/services", controllers.GetMyServices)
		portal.GET("/logs", controllers.GetMyLogs)
		portal.POST("/inquiries", controllers.CreateInquiry)
	}

	return r
}
