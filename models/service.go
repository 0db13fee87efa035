package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
	BillingOneTime BillingCycle = "one_time"
)

func (b BillingCycle) IsValid() bool {
	return b == BillingMonthly || b == BillingYearly || b == BillingOneTime
}

// StringList is an ordered list of strings stored as a JSONB column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

type Service struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Description  string       `json:"description"`
	Price        *float64     `gorm:"type:decimal(10,2)" json:"price"`
	Currency     string       `gorm:"type:varchar(3);default:'JPY'" json:"currency"`
	BillingCycle BillingCycle `gorm:"type:varchar(10);default:'monthly'" json:"billingCycle"`
	IsActive     bool         `gorm:"default:true" json:"isActive"`
	Features     StringList   `gorm:"type:jsonb" json:"features"`
	CategoryID   *uuid.UUID   `gorm:"type:uuid;index" json:"categoryId"`
	LogEnabled   bool         `gorm:"default:false" json:"logEnabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ServiceCategory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `gorm:"default:0;index" json:"displayOrder"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	Services []Service `gorm:"foreignKey:CategoryID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
