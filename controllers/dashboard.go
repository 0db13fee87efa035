package controllers

import (
	"net/http"

	"virtualoffice-backend/config"
	"virtualoffice-backend/models"
	"virtualoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers   int64             `json:"totalCustomers"`
	ActiveCustomers  int64             `json:"activeCustomers"`
	TrialCustomers   int64             `json:"trialCustomers"`
	PendingInquiries int64             `json:"pendingInquiries"`
	DraftLogs        int64             `json:"draftLogs"`
	RecentActivities []models.Activity `json:"recentActivities"`
}

func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	counts := []error{
		config.DB.Model(&models.Customer{}).Count(&overview.TotalCustomers).Error,
		config.DB.Model(&models.Customer{}).
			Where("contract_status = ?", models.ContractActive).Count(&overview.ActiveCustomers).Error,
		config.DB.Model(&models.Customer{}).
			Where("contract_status = ?", models.ContractTrial).Count(&overview.TrialCustomers).Error,
		config.DB.Model(&models.Inquiry{}).
			Where("status = ?", models.InquiryPending).Count(&overview.PendingInquiries).Error,
		config.DB.Model(&models.ServiceLog{}).
			Where("status = ?", models.LogDraft).Count(&overview.DraftLogs).Error,
	}
	for _, err := range counts {
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve dashboard counts")
			return
		}
	}

	if err := config.DB.Order("created_at DESC").Limit(10).
		Find(&overview.RecentActivities).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve activity feed")
		return
	}

	c.JSON(http.StatusOK, overview)
}
