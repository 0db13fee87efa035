package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyType string

const (
	CompanyTypeCorporate  CompanyType = "corporate"
	CompanyTypeIndividual CompanyType = "individual"
)

func (t CompanyType) IsValid() bool {
	return t == CompanyTypeCorporate || t == CompanyTypeIndividual
}

type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractTrial     ContractStatus = "trial"
	ContractSuspended ContractStatus = "suspended"
	ContractCancelled ContractStatus = "cancelled"
)

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractActive, ContractTrial, ContractSuspended, ContractCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPaypal       PaymentMethod = "paypal"
	PaymentUnset        PaymentMethod = "unset"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentBankTransfer || m == PaymentPaypal || m == PaymentUnset
}

type InvoiceDeliveryMethod string

const (
	InvoiceByEmail  InvoiceDeliveryMethod = "email"
	InvoiceByPostal InvoiceDeliveryMethod = "postal"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index" json:"createdByUserId"`
	UpdatedByUserID uuid.UUID `gorm:"type:uuid" json:"updatedByUserId"`

	CompanyType     CompanyType `gorm:"type:varchar(20);not null;default:'corporate'" json:"companyType"`
	CompanyName     string      `gorm:"not null" json:"companyName"`
	CompanyNameKana string      `json:"companyNameKana"`
	ContactName     string      `gorm:"not null" json:"contactName"`
	Email           string      `gorm:"index" json:"email"`
	Phone           string      `json:"phone"`

	OriginPostalCode     string `gorm:"type:varchar(10)" json:"originPostalCode"`
	OriginAddress        string `json:"originAddress"`
	ForwardingPostalCode string `gorm:"type:varchar(10)" json:"forwardingPostalCode"`
	ForwardingAddress    string `json:"forwardingAddress"`

	ContractStartDate *time.Time     `json:"contractStartDate"`
	ContractEndDate   *time.Time     `json:"contractEndDate"`
	ContractStatus    ContractStatus `gorm:"type:varchar(20);not null;default:'trial';index" json:"contractStatus"`

	PaymentMethod         PaymentMethod         `gorm:"type:varchar(20);not null;default:'unset'" json:"paymentMethod"`
	InvoiceRequired       bool                  `gorm:"default:false" json:"invoiceRequired"`
	InvoiceDeliveryMethod InvoiceDeliveryMethod `gorm:"type:varchar(10)" json:"invoiceDeliveryMethod"`

	Services []Service `gorm:"many2many:customer_services" json:"services"`
	Notes    string    `json:"notes"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsCancelled reports whether the contract is in the cancelled state.
// The lifecycle rules keep ContractEndDate set exactly when this is true.
func (c *Customer) IsCancelled() bool {
	return c.ContractStatus == ContractCancelled
}
