package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityCustomerCreated     ActivityType = "customer_created"
	ActivityCustomerUpdated     ActivityType = "customer_updated"
	ActivityCustomerCancelled   ActivityType = "customer_cancelled"
	ActivityCustomerReactivated ActivityType = "customer_reactivated"
	ActivityLogCreated          ActivityType = "log_created"
	ActivityLogPublished        ActivityType = "log_published"
	ActivityLogDeleted          ActivityType = "log_deleted"
	ActivityInquiryCreated      ActivityType = "inquiry_created"
	ActivityInquiryResolved     ActivityType = "inquiry_resolved"
)

// JSONB holds loosely structured activity metadata.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, j)
}

// Activity is an append-only audit event. Rows are written as a side effect
// of customer/log/inquiry mutations and never updated or deleted.
type Activity struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Type       ActivityType `gorm:"type:varchar(40);not null;index" json:"type"`
	EntityID   uuid.UUID    `gorm:"type:uuid;index" json:"entityId"`
	EntityName string       `json:"entityName"`
	ActorID    uuid.UUID    `gorm:"type:uuid" json:"actorId"`
	ActorName  string       `json:"actorName"`
	Metadata   JSONB        `gorm:"type:jsonb" json:"metadata"`
	CreatedAt  time.Time    `gorm:"index" json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
