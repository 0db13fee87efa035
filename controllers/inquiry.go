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

// GetInquiries lists inquiries for the admin console, newest first.
func GetInquiries(c *gin.Context) {
	query := config.DB.Model(&models.Inquiry{})

	if status := c.Query("status"); status != "" {
		if status != string(models.InquiryPending) && status != string(models.InquiryResolved) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid inquiry status")
			return
		}
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customerId"); customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		query = query.Where("customer_id = ?", id)
	}

	var inquiries []models.Inquiry
	if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inquiries")
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// ResolveInquiry marks an inquiry resolved. Status is the only inquiry
// field admins may mutate.
func ResolveInquiry(c *gin.Context) {
	actorID, actorName := currentActor(c)

	inquiryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inquiry ID format")
		return
	}

	var inquiry models.Inquiry
	if err := config.DB.Where("id = ?", inquiryUUID).First(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inquiry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	inquiry.Status = models.InquiryResolved
	if err := config.DB.Save(&inquiry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inquiry")
		return
	}

	activities.Record(models.ActivityInquiryResolved, inquiry.ID, inquiry.Subject, actorID, actorName, nil)

	c.JSON(http.StatusOK, inquiry)
}
