// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"virtualoffice-backend/config"
	"virtualoffice-backend/models"
	"virtualoffice-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Price        *float64            `json:"price"`
	Currency     string              `json:"currency"`
	BillingCycle models.BillingCycle `json:"billingCycle"`
	Features     []string            `json:"features"`
	CategoryID   *uuid.UUID          `json:"categoryId"`
	LogEnabled   bool                `json:"logEnabled"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Price        *float64             `json:"price"`
	Currency     *string              `json:"currency"`
	BillingCycle *models.BillingCycle `json:"billingCycle"`
	Features     *[]string            `json:"features"`
	CategoryID   *uuid.UUID           `json:"categoryId"`
	LogEnabled   *bool                `json:"logEnabled"`
	IsActive     *bool                `json:"isActive"`
}

func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cycle := input.BillingCycle
	if cycle == "" {
		cycle = models.BillingMonthly
	}
	if !cycle.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid billing cycle")
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "JPY"
	}

	service := models.Service{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Currency:     currency,
		BillingCycle: cycle,
		Features:     input.Features,
		CategoryID:   input.CategoryID,
		LogEnabled:   input.LogEnabled,
		IsActive:     true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func GetServices(c *gin.Context) {
	query := config.DB.Model(&models.Service{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if categoryID := c.Query("categoryId"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		query = query.Where("category_id = ?", id)
	}

	var srvs []models.Service
	if err := query.Order("name").Find(&srvs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, srvs)
}

func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = input.Price
	}
	if input.Currency != nil {
		service.Currency = *input.Currency
	}
	if input.BillingCycle != nil {
		if !input.BillingCycle.IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid billing cycle")
			return
		}
		service.BillingCycle = *input.BillingCycle
	}
	if input.Features != nil {
		service.Features = *input.Features
	}
	if input.CategoryID != nil {
		service.CategoryID = input.CategoryID
	}
	if input.LogEnabled != nil {
		service.LogEnabled = *input.LogEnabled
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
