package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryCategory string

const (
	InquiryService  InquiryCategory = "service"
	InquiryBilling  InquiryCategory = "billing"
	InquiryShipping InquiryCategory = "shipping"
	InquiryContract InquiryCategory = "contract"
	InquiryOther    InquiryCategory = "other"
)

func (c InquiryCategory) IsValid() bool {
	switch c {
	case InquiryService, InquiryBilling, InquiryShipping, InquiryContract, InquiryOther:
		return true
	}
	return false
}

type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "pending"
	InquiryResolved InquiryStatus = "resolved"
)

// Inquiry is a support message from the customer portal. The contact fields
// are a snapshot of the customer at submission time, so later customer edits
// do not rewrite inquiry history.
type Inquiry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Email       string `json:"email"`
	ContactName string `json:"contactName"`
	CompanyName string `json:"companyName"`

	Category InquiryCategory `gorm:"type:varchar(20);not null" json:"category"`
	Subject  string          `gorm:"not null" json:"subject"`
	Content  string          `gorm:"type:text" json:"content"`
	Status   InquiryStatus   `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
