package main

import (
	"fmt"
	"os"

	"virtualoffice-backend/config"
	"virtualoffice-backend/controllers"
	"virtualoffice-backend/models"
	"virtualoffice-backend/routes"
	"virtualoffice-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	if err := config.InitRedis(); err != nil {
		config.Logger.Warn("Redis unavailable, login rate limiting disabled", zap.Error(err))
	}

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.ServiceCategory{},
		&models.ServiceLog{},
		&models.ServiceLogImage{},
		&models.Inquiry{},
		&models.ShippingCost{},
		&models.Activity{},
	)

	seedAdmin()

	controllers.Init()
}

// seedAdmin creates the first admin account from the environment so a fresh
// deployment can be logged into. Further accounts are managed in-app.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{
		Email:    email,
		Password: password, // hashed in BeforeCreate hook
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		config.Logger.Warn("failed to seed admin account", zap.Error(err))
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	digest := services.NewDigestService(config.DB, services.NewNotifier(config.Logger), config.Logger)
	digest.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
