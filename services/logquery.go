package services

import (
	"strings"
	"time"

	"virtualoffice-backend/models"
	"virtualoffice-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogFilter combines the structured filters pushed down to the store with
// the in-memory keyword filter and pagination applied on top.
type LogFilter struct {
	CustomerID *uuid.UUID
	ServiceID  *uuid.UUID
	WorkerID   *uuid.UUID
	Status     *models.LogStatus
	StartDate  *time.Time // inclusive, over workDate
	EndDate    *time.Time // inclusive
	Keyword    string
	Limit      int
	Offset     int
}

// ServiceLogStore answers the structured part of a log query. Results come
// back sorted by workDate descending; keyword and pagination are not its
// concern.
type ServiceLogStore interface {
	FindLogs(filter LogFilter) ([]models.ServiceLog, error)
	HasLogEnabledService(customerID uuid.UUID) (bool, error)
}

// LogQuery serves the admin log list and the customer-portal log view.
type LogQuery struct {
	store ServiceLogStore
}

func NewLogQuery(store ServiceLogStore) *LogQuery {
	return &LogQuery{store: store}
}

// Query runs the structured filters against the store, then the keyword
// filter in memory, then pagination. The returned total is the post-keyword
// count, so it always matches what pagination is slicing over.
func (q *LogQuery) Query(filter LogFilter) ([]models.ServiceLog, int, error) {
	logs, err := q.store.FindLogs(filter)
	if err != nil {
		return nil, 0, err
	}

	logs = filterByKeyword(logs, filter.Keyword)
	total := len(logs)
	logs = paginate(logs, filter.Offset, filter.Limit)

	return logs, total, nil
}

// PortalQuery is the customer-facing view: forced to the caller's own
// customer id and to published logs, with the period shortcut resolved to a
// concrete start date. Customers holding no log-enabled service get the
// empty state without the log query ever running.
func (q *LogQuery) PortalQuery(customerID uuid.UUID, period string, limit, offset int) ([]models.ServiceLog, int, error) {
	eligible, err := q.store.HasLogEnabledService(customerID)
	if err != nil {
		return nil, 0, err
	}
	if !eligible {
		return []models.ServiceLog{}, 0, nil
	}

	published := models.LogPublished
	filter := LogFilter{
		CustomerID: &customerID,
		Status:     &published,
		StartDate:  utils.ResolvePeriodStart(period, time.Now()),
		Limit:      limit,
		Offset:     offset,
	}
	return q.Query(filter)
}

// filterByKeyword keeps logs whose comment or worker name contains the
// keyword, case-insensitively, as a substring.
func filterByKeyword(logs []models.ServiceLog, keyword string) []models.ServiceLog {
	if keyword == "" {
		return logs
	}
	kw := strings.ToLower(keyword)
	filtered := make([]models.ServiceLog, 0, len(logs))
	for _, log := range logs {
		if strings.Contains(strings.ToLower(log.Comment), kw) ||
			strings.Contains(strings.ToLower(log.WorkerName), kw) {
			filtered = append(filtered, log)
		}
	}
	return filtered
}

func paginate(logs []models.ServiceLog, offset, limit int) []models.ServiceLog {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(logs) {
		return []models.ServiceLog{}
	}
	logs = logs[offset:]
	if limit > 0 && limit < len(logs) {
		logs = logs[:limit]
	}
	return logs
}

type gormServiceLogStore struct {
	db *gorm.DB
}

func NewGormServiceLogStore(db *gorm.DB) ServiceLogStore {
	return &gormServiceLogStore{db: db}
}

func (s *gormServiceLogStore) FindLogs(filter LogFilter) ([]models.ServiceLog, error) {
	query := s.db.Model(&models.ServiceLog{}).Preload("Images")

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ServiceID != nil {
		query = query.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.WorkerID != nil {
		query = query.Where("worker_id = ?", *filter.WorkerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("work_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("work_date <= ?", *filter.EndDate)
	}

	var logs []models.ServiceLog
	if err := query.Order("work_date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *gormServiceLogStore) HasLogEnabledService(customerID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Table("customer_services").
		Joins("JOIN services ON services.id = customer_services.service_id").
		Where("customer_services.customer_id = ? AND services.log_enabled = ?", customerID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
