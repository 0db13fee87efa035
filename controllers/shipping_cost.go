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

type CreateShippingCostInput struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"min=0"`
	Description  string  `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
}

type UpdateShippingCostInput struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	DisplayOrder *int     `json:"displayOrder"`
	IsActive     *bool    `json:"isActive"`
}

func CreateShippingCost(c *gin.Context) {
	var input CreateShippingCostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	cost := models.ShippingCost{
		Name:         input.Name,
		Price:        input.Price,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}

	if err := config.DB.Create(&cost).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shipping cost")
		return
	}

	c.JSON(http.StatusCreated, cost)
}

func GetShippingCosts(c *gin.Context) {
	var costs []models.ShippingCost
	if err := config.DB.Order("display_order, name").Find(&costs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shipping costs")
		return
	}

	c.JSON(http.StatusOK, costs)
}

func UpdateShippingCost(c *gin.Context) {
	costUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shipping cost ID format")
		return
	}

	var input UpdateShippingCostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var cost models.ShippingCost
	if err := config.DB.Where("id = ?", costUUID).First(&cost).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shipping cost not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		cost.Name = *input.Name
	}
	if input.Price != nil {
		cost.Price = *input.Price
	}
	if input.Description != nil {
		cost.Description = *input.Description
	}
	if input.DisplayOrder != nil {
		cost.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		cost.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&cost).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update shipping cost")
		return
	}

	c.JSON(http.StatusOK, cost)
}

func DeleteShippingCost(c *gin.Context) {
	costUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shipping cost ID format")
		return
	}

	result := config.DB.Where("id = ?", costUUID).Delete(&models.ShippingCost{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shipping cost")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Shipping cost not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shipping cost deleted successfully"})
}
