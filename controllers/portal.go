// controllers/portal.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"virtualoffice-backend/config"
	"virtualoffice-backend/models"
	"virtualoffice-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// portalCustomerID resolves the authenticated portal user's own customer id
// from the JWT claims. Portal views are always scoped to it.
func portalCustomerID(c *gin.Context) (uuid.UUID, bool) {
	customerID, exists := c.Get("customerId")
	if !exists {
		utils.RespondWithError(c, http.StatusForbidden, "No customer linked to this account")
		return uuid.Nil, false
	}
	raw, ok := customerID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid customer ID in token")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid customer ID in token")
		return uuid.Nil, false
	}
	return id, true
}

// GetMyServices lists the active services the customer subscribes to.
func GetMyServices(c *gin.Context) {
	customerID, ok := portalCustomerID(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Services", "is_active = ?", true).
		Where("id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer.Services)
}

// GetMyLogs serves the customer's own published work records. Customers
// without a log-enabled service get the empty state.
func GetMyLogs(c *gin.Context) {
	customerID, ok := portalCustomerID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	period := c.DefaultQuery("period", utils.PeriodAll)

	logs, total, err := logQuery.PortalQuery(customerID, period, limit, offset)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":   logs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

type CreateInquiryInput struct {
	Category models.InquiryCategory `json:"category" binding:"required"`
	Subject  string                 `json:"subject" binding:"required"`
	Content  string                 `json:"content" binding:"required"`
}

// CreateInquiry submits a support message. Contact fields are snapshotted
// from the customer record at submission time.
func CreateInquiry(c *gin.Context) {
	customerID, ok := portalCustomerID(c)
	if !ok {
		return
	}

	var input CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Category.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inquiry category")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	inquiry := models.Inquiry{
		CustomerID:  customer.ID,
		Email:       customer.Email,
		ContactName: customer.ContactName,
		CompanyName: customer.CompanyName,
		Category:    input.Category,
		Subject:     input.Subject,
		Content:     input.Content,
		Status:      models.InquiryPending,
	}

	if err := config.DB.Create(&inquiry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}

	activities.Record(models.ActivityInquiryCreated, inquiry.ID, inquiry.Subject,
		uuid.Nil, customer.ContactName, models.JSONB{"customerId": customer.ID.String()})

	c.JSON(http.StatusCreated, inquiry)
}
