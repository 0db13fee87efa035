package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrTooManyImages is returned when a log already carries MaxLogImages
// photos and another add is attempted.
var ErrTooManyImages = errors.New("a log may carry at most 5 images")

type LogStatus string

const (
	LogDraft     LogStatus = "draft"
	LogPublished LogStatus = "published"
)

func (s LogStatus) IsValid() bool {
	return s == LogDraft || s == LogPublished
}

// MaxLogImages caps how many photos a single log may carry.
const MaxLogImages = 5

type ServiceLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	ServiceID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"serviceId"`
	WorkDate       time.Time  `gorm:"index;not null" json:"workDate"`
	WorkerID       uuid.UUID  `gorm:"type:uuid;index" json:"workerId"`
	WorkerName     string     `json:"workerName"`
	Comment        string     `json:"comment"`
	Status         LogStatus  `gorm:"type:varchar(10);not null;default:'draft';index" json:"status"`
	ShippingCostID *uuid.UUID `gorm:"type:uuid" json:"shippingCostId"`

	Images []ServiceLogImage `gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE" json:"images"`

	gorm.Model
}

func (l *ServiceLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// AddImage appends an image, refusing the sixth. Position follows insertion
// order.
func (l *ServiceLog) AddImage(image ServiceLogImage) error {
	if len(l.Images) >= MaxLogImages {
		return ErrTooManyImages
	}
	image.LogID = l.ID
	image.Position = len(l.Images)
	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now()
	}
	l.Images = append(l.Images, image)
	return nil
}

// RemoveImage drops the image with the given id and renumbers positions.
// Reports whether the image was present.
func (l *ServiceLog) RemoveImage(imageID uuid.UUID) bool {
	for i, img := range l.Images {
		if img.ID == imageID {
			l.Images = append(l.Images[:i], l.Images[i+1:]...)
			for j := range l.Images {
				l.Images[j].Position = j
			}
			return true
		}
	}
	return false
}

type ServiceLogImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LogID      uuid.UUID `gorm:"type:uuid;index;not null" json:"logId"`
	URL        string    `gorm:"not null" json:"url"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	Position   int       `gorm:"default:0" json:"position"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (i *ServiceLogImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
