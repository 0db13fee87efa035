package controllers

import (
	"errors"
	"net/http"
	"time"

	"virtualoffice-backend/config"
	"virtualoffice-backend/models"
	"virtualoffice-backend/services"
	"virtualoffice-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	CompanyType     models.CompanyType `json:"companyType" binding:"required"`
	CompanyName     string             `json:"companyName" binding:"required"`
	CompanyNameKana string             `json:"companyNameKana"`
	ContactName     string             `json:"contactName" binding:"required"`
	Email           *string            `json:"email"` // Pointer to allow null
	Phone           string             `json:"phone"`

	OriginPostalCode     string `json:"originPostalCode"`
	OriginAddress        string `json:"originAddress"`
	ForwardingPostalCode string `json:"forwardingPostalCode"`
	ForwardingAddress    string `json:"forwardingAddress"`

	ContractStartDate *time.Time            `json:"contractStartDate"`
	ContractStatus    models.ContractStatus `json:"contractStatus"`

	PaymentMethod         models.PaymentMethod         `json:"paymentMethod"`
	InvoiceRequired       bool                         `json:"invoiceRequired"`
	InvoiceDeliveryMethod models.InvoiceDeliveryMethod `json:"invoiceDeliveryMethod"`

	ServiceIDs []uuid.UUID `json:"serviceIds"`
	Notes      string      `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	CompanyType     *models.CompanyType `json:"companyType"`
	CompanyName     *string             `json:"companyName"`
	CompanyNameKana *string             `json:"companyNameKana"`
	ContactName     *string             `json:"contactName"`
	Email           *string             `json:"email"`
	Phone           *string             `json:"phone"`

	OriginPostalCode     *string `json:"originPostalCode"`
	OriginAddress        *string `json:"originAddress"`
	ForwardingPostalCode *string `json:"forwardingPostalCode"`
	ForwardingAddress    *string `json:"forwardingAddress"`

	ContractStartDate *time.Time             `json:"contractStartDate"`
	ContractStatus    *models.ContractStatus `json:"contractStatus"`

	PaymentMethod         *models.PaymentMethod         `json:"paymentMethod"`
	InvoiceRequired       *bool                         `json:"invoiceRequired"`
	InvoiceDeliveryMethod *models.InvoiceDeliveryMethod `json:"invoiceDeliveryMethod"`

	ServiceIDs *[]uuid.UUID `json:"serviceIds"`
	Notes      *string      `json:"notes"`
}

// CreateCustomer creates a new customer, provisioning a portal account when
// an email is supplied.
func CreateCustomer(c *gin.Context) {
	actorID, actorName := currentActor(c)

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.CompanyType.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid company type")
		return
	}
	status := input.ContractStatus
	if status == "" {
		status = models.ContractTrial
	}
	if !status.IsValid() || status == models.ContractCancelled {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract status")
		return
	}
	payment := input.PaymentMethod
	if payment == "" {
		payment = models.PaymentUnset
	}
	if !payment.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method")
		return
	}

	customer := models.Customer{
		ID:              uuid.New(),
		CompanyType:     input.CompanyType,
		CompanyName:     input.CompanyName,
		CompanyNameKana: input.CompanyNameKana,
		ContactName:     input.ContactName,
		Phone:           input.Phone,

		OriginPostalCode:     input.OriginPostalCode,
		OriginAddress:        input.OriginAddress,
		ForwardingPostalCode: input.ForwardingPostalCode,
		ForwardingAddress:    input.ForwardingAddress,

		ContractStartDate: input.ContractStartDate,
		ContractStatus:    status,

		PaymentMethod:         payment,
		InvoiceRequired:       input.InvoiceRequired,
		InvoiceDeliveryMethod: input.InvoiceDeliveryMethod,
		Notes:                 input.Notes,
	}

	if input.Email != nil {
		customer.Email = *input.Email
	}

	account, warnings, err := lifecycle.CreateWithAccount(&customer, actorID, actorName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	if len(input.ServiceIDs) > 0 {
		if err := replaceServices(&customer, input.ServiceIDs); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ids")
			return
		}
	}

	response := gin.H{"customer": customer}
	if account != nil {
		response["account"] = account
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}

	c.JSON(http.StatusCreated, response)
}

// GetCustomers retrieves customers, optionally filtered by contract status.
func GetCustomers(c *gin.Context) {
	query := config.DB.Preload("Services")

	if status := c.Query("status"); status != "" {
		if !models.ContractStatus(status).IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract status")
			return
		}
		query = query.Where("contract_status = ?", status)
	}

	var customers []models.Customer
	if err := query.Order("company_name_kana, company_name").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetKanaGroups partitions customers into syllabary-row groups for the
// two-step picker. Every customer lands in exactly one group.
func GetKanaGroups(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Select("id", "company_name", "company_name_kana").
		Order("company_name_kana, company_name").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	type pickerEntry struct {
		ID              uuid.UUID `json:"id"`
		CompanyName     string    `json:"companyName"`
		CompanyNameKana string    `json:"companyNameKana"`
	}

	grouped := make(map[string][]pickerEntry, len(utils.KanaGroups))
	for _, group := range utils.KanaGroups {
		grouped[group] = []pickerEntry{}
	}
	for _, customer := range customers {
		group := utils.ClassifyKana(customer.CompanyNameKana)
		grouped[group] = append(grouped[group], pickerEntry{
			ID:              customer.ID,
			CompanyName:     customer.CompanyName,
			CompanyNameKana: customer.CompanyNameKana,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"groups":  utils.KanaGroups,
		"members": grouped,
	})
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Services").Where("id = ?", customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	actorID, actorName := currentActor(c)

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ?", customerUUID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.CompanyType != nil {
		if !input.CompanyType.IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid company type")
			return
		}
		customer.CompanyType = *input.CompanyType
	}
	if input.CompanyName != nil {
		customer.CompanyName = *input.CompanyName
	}
	if input.CompanyNameKana != nil {
		customer.CompanyNameKana = *input.CompanyNameKana
	}
	if input.ContactName != nil {
		customer.ContactName = *input.ContactName
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.OriginPostalCode != nil {
		customer.OriginPostalCode = *input.OriginPostalCode
	}
	if input.OriginAddress != nil {
		customer.OriginAddress = *input.OriginAddress
	}
	if input.ForwardingPostalCode != nil {
		customer.ForwardingPostalCode = *input.ForwardingPostalCode
	}
	if input.ForwardingAddress != nil {
		customer.ForwardingAddress = *input.ForwardingAddress
	}
	if input.ContractStartDate != nil {
		customer.ContractStartDate = input.ContractStartDate
	}
	if input.ContractStatus != nil {
		// Cancel and reactivate have their own endpoints so their side
		// effects always run; plain edits cover the remaining statuses
		// and must not move a customer into or out of cancelled.
		if !input.ContractStatus.IsValid() || *input.ContractStatus == models.ContractCancelled {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract status")
			return
		}
		if customer.IsCancelled() && *input.ContractStatus != customer.ContractStatus {
			utils.RespondWithError(c, http.StatusConflict, "Customer is cancelled; use the reactivate endpoint")
			return
		}
		customer.ContractStatus = *input.ContractStatus
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method")
			return
		}
		customer.PaymentMethod = *input.PaymentMethod
	}
	if input.InvoiceRequired != nil {
		customer.InvoiceRequired = *input.InvoiceRequired
	}
	if input.InvoiceDeliveryMethod != nil {
		customer.InvoiceDeliveryMethod = *input.InvoiceDeliveryMethod
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	customer.UpdatedByUserID = actorID

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	if input.ServiceIDs != nil {
		if err := replaceServices(&customer, *input.ServiceIDs); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ids")
			return
		}
	}

	lifecycle.RecordUpdate(&customer, actorID, actorName)

	c.JSON(http.StatusOK, customer)
}

// CancelCustomer runs the cancel transition with its side effects.
func CancelCustomer(c *gin.Context) {
	actorID, actorName := currentActor(c)

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	warnings, err := lifecycle.Cancel(customerUUID, actorID, actorName)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel customer")
		}
		return
	}

	response := gin.H{"message": "Customer cancelled"}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	c.JSON(http.StatusOK, response)
}

// ReactivateCustomer runs the reactivate transition with its side effects.
func ReactivateCustomer(c *gin.Context) {
	actorID, actorName := currentActor(c)

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	warnings, err := lifecycle.Reactivate(customerUUID, actorID, actorName)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reactivate customer")
		}
		return
	}

	response := gin.H{"message": "Customer reactivated"}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	c.JSON(http.StatusOK, response)
}

// LookupAddress prefills an address from a postal code. Lookup failures are
// not errors; the field just stays blank.
func LookupAddress(c *gin.Context) {
	address := addressLookup.Lookup(c.Param("postalCode"))
	c.JSON(http.StatusOK, gin.H{"address": address})
}

func replaceServices(customer *models.Customer, serviceIDs []uuid.UUID) error {
	var svcs []models.Service
	if len(serviceIDs) > 0 {
		if err := config.DB.Where("id IN ?", serviceIDs).Find(&svcs).Error; err != nil {
			return err
		}
	}
	return config.DB.Model(customer).Association("Services").Replace(svcs)
}
