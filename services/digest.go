package services

import (
	"fmt"

	"virtualoffice-backend/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DigestService summarizes pending inquiries once a day so unanswered
// customer messages do not sit unnoticed.
type DigestService struct {
	db       *gorm.DB
	notifier *Notifier
	logger   *zap.Logger
}

func NewDigestService(db *gorm.DB, notifier *Notifier, logger *zap.Logger) *DigestService {
	return &DigestService{db: db, notifier: notifier, logger: logger}
}

func (s *DigestService) StartScheduler() {
	c := cron.New()

	// Run daily at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyDigest)

	c.Start()
	s.logger.Info("inquiry digest scheduler started")
}

func (s *DigestService) SendDailyDigest() {
	var pending int64
	if err := s.db.Model(&models.Inquiry{}).
		Where("status = ?", models.InquiryPending).
		Count(&pending).Error; err != nil {
		s.logger.Warn("failed to count pending inquiries", zap.Error(err))
		return
	}

	s.logger.Info("daily inquiry digest", zap.Int64("pending", pending))

	if pending > 0 {
		s.notifier.NotifyAdmin(fmt.Sprintf("未対応のお問い合わせが%d件あります。", pending))
	}
}
