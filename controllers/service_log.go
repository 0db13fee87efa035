// controllers/service_log.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"virtualoffice-backend/config"
	"virtualoffice-backend/models"
	"virtualoffice-backend/services"
	"virtualoffice-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogImageInput struct {
	URL      string `json:"url" binding:"required"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type CreateServiceLogInput struct {
	CustomerID     uuid.UUID        `json:"customerId" binding:"required"`
	ServiceID      uuid.UUID        `json:"serviceId" binding:"required"`
	WorkDate       time.Time        `json:"workDate" binding:"required"`
	Comment        string           `json:"comment"`
	Status         models.LogStatus `json:"status"`
	ShippingCostID *uuid.UUID       `json:"shippingCostId"`
	Images         []LogImageInput  `json:"images"`
}

type UpdateServiceLogInput struct {
	WorkDate       *time.Time `json:"workDate"`
	Comment        *string    `json:"comment"`
	ShippingCostID *uuid.UUID `json:"shippingCostId"`
}

// CreateServiceLog records work done for a customer. The customer must hold
// the log's service and that service must have logging enabled.
func CreateServiceLog(c *gin.Context) {
	actorID, actorName := currentActor(c)

	var input CreateServiceLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = models.LogDraft
	}
	if !status.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log status")
		return
	}

	var held int64
	err := config.DB.Table("customer_services").
		Joins("JOIN services ON services.id = customer_services.service_id").
		Where("customer_services.customer_id = ? AND services.id = ? AND services.log_enabled = ?",
			input.CustomerID, input.ServiceID, true).
		Count(&held).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if held == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer does not hold a log-enabled subscription for this service")
		return
	}

	log := models.ServiceLog{
		ID:             uuid.New(),
		CustomerID:     input.CustomerID,
		ServiceID:      input.ServiceID,
		WorkDate:       input.WorkDate,
		WorkerID:       actorID,
		WorkerName:     actorName,
		Comment:        input.Comment,
		Status:         status,
		ShippingCostID: input.ShippingCostID,
	}
	for _, img := range input.Images {
		if err := log.AddImage(models.ServiceLogImage{
			URL:      img.URL,
			Filename: img.Filename,
			Size:     img.Size,
		}); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := config.DB.Create(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service log")
		return
	}

	activities.Record(models.ActivityLogCreated, log.ID, log.Comment, actorID, actorName, nil)

	c.JSON(http.StatusCreated, log)
}

// GetServiceLogs serves the admin log list: structured filters, keyword
// search and offset/limit pagination.
func GetServiceLogs(c *gin.Context) {
	filter := services.LogFilter{
		Keyword: c.Query("keyword"),
	}

	if v := c.Query("customerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		filter.CustomerID = &id
	}
	if v := c.Query("serviceId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		filter.ServiceID = &id
	}
	if v := c.Query("workerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid worker ID format")
			return
		}
		filter.WorkerID = &id
	}
	if v := c.Query("status"); v != "" {
		status := models.LogStatus(v)
		if !status.IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid log status")
			return
		}
		filter.Status = &status
	}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date")
			return
		}
		filter.EndDate = &t
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, total, err := logQuery.Query(filter)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":   logs,
		"total":  total,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

func GetServiceLog(c *gin.Context) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}

	var log models.ServiceLog
	if err := config.DB.Preload("Images").Where("id = ?", logUUID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, log)
}

func UpdateServiceLog(c *gin.Context) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}

	var input UpdateServiceLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var log models.ServiceLog
	if err := config.DB.Where("id = ?", logUUID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.WorkDate != nil {
		log.WorkDate = *input.WorkDate
	}
	if input.Comment != nil {
		log.Comment = *input.Comment
	}
	if input.ShippingCostID != nil {
		log.ShippingCostID = input.ShippingCostID
	}

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service log")
		return
	}

	c.JSON(http.StatusOK, log)
}

// AddLogImage attaches one image, refusing the sixth.
func AddLogImage(c *gin.Context) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}

	var input LogImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var log models.ServiceLog
	if err := config.DB.Preload("Images").Where("id = ?", logUUID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := log.AddImage(models.ServiceLogImage{
		URL:      input.URL,
		Filename: input.Filename,
		Size:     input.Size,
	}); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	image := log.Images[len(log.Images)-1]
	if err := config.DB.Create(&image).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add image")
		return
	}

	c.JSON(http.StatusCreated, image)
}

func RemoveLogImage(c *gin.Context) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}
	imageUUID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image ID format")
		return
	}

	result := config.DB.Where("id = ? AND log_id = ?", imageUUID, logUUID).
		Delete(&models.ServiceLogImage{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove image")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Image not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully"})
}

// PublishServiceLog makes the log visible on the customer portal and
// best-effort notifies the customer.
func PublishServiceLog(c *gin.Context) {
	setLogStatus(c, models.LogPublished)
}

// UnpublishServiceLog flips the log back to draft.
func UnpublishServiceLog(c *gin.Context) {
	setLogStatus(c, models.LogDraft)
}

func setLogStatus(c *gin.Context, status models.LogStatus) {
	actorID, actorName := currentActor(c)

	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}

	var log models.ServiceLog
	if err := config.DB.Where("id = ?", logUUID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	log.Status = status
	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service log")
		return
	}

	if status == models.LogPublished {
		var customer models.Customer
		if err := config.DB.Where("id = ?", log.CustomerID).First(&customer).Error; err == nil {
			notifier.NotifyLogPublished(customer, log)
		}
		activities.Record(models.ActivityLogPublished, log.ID, log.Comment, actorID, actorName, nil)
	}

	c.JSON(http.StatusOK, log)
}

// DeleteServiceLog removes the log and its image rows; blob cleanup belongs
// to the storage collaborator. The log itself is soft-deleted, so the image
// rows are deleted explicitly rather than relying on the FK cascade.
func DeleteServiceLog(c *gin.Context) {
	actorID, actorName := currentActor(c)

	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid log ID format")
		return
	}

	var rowsAffected int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", logUUID).Delete(&models.ServiceLog{})
		if result.Error != nil {
			return result.Error
		}
		rowsAffected = result.RowsAffected
		if rowsAffected == 0 {
			return nil
		}
		return tx.Where("log_id = ?", logUUID).Delete(&models.ServiceLogImage{}).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service log")
		return
	}
	if rowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		return
	}

	activities.Record(models.ActivityLogDeleted, logUUID, "", actorID, actorName, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Service log deleted successfully"})
}
