package services

import (
	"virtualoffice-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityAppender records audit events for the dashboard feed. Appends are
// best-effort everywhere they are called: a failed append must never abort
// the mutation that triggered it.
type ActivityAppender interface {
	Record(activityType models.ActivityType, entityID uuid.UUID, entityName string, actorID uuid.UUID, actorName string, metadata models.JSONB)
}

type activityRecorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewActivityRecorder(db *gorm.DB, logger *zap.Logger) ActivityAppender {
	return &activityRecorder{db: db, logger: logger}
}

// Record appends one activity row and swallows its own errors.
func (r *activityRecorder) Record(activityType models.ActivityType, entityID uuid.UUID, entityName string, actorID uuid.UUID, actorName string, metadata models.JSONB) {
	activity := models.Activity{
		Type:       activityType,
		EntityID:   entityID,
		EntityName: entityName,
		ActorID:    actorID,
		ActorName:  actorName,
		Metadata:   metadata,
	}
	if err := r.db.Create(&activity).Error; err != nil {
		r.logger.Warn("failed to record activity",
			zap.String("type", string(activityType)),
			zap.String("entityId", entityID.String()),
			zap.Error(err),
		)
	}
}
