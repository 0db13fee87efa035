package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"virtualoffice-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogStore struct {
	logs       []models.ServiceLog
	logEnabled map[uuid.UUID]bool
	findCalls  int
	findErr    error
	hasErr     error
}

func (s *fakeLogStore) FindLogs(filter LogFilter) ([]models.ServiceLog, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}

	var out []models.ServiceLog
	for _, log := range s.logs {
		if filter.CustomerID != nil && log.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ServiceID != nil && log.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.WorkerID != nil && log.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.Status != nil && log.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && log.WorkDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && log.WorkDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, log)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkDate.After(out[j].WorkDate) })
	return out, nil
}

func (s *fakeLogStore) HasLogEnabledService(customerID uuid.UUID) (bool, error) {
	if s.hasErr != nil {
		return false, s.hasErr
	}
	return s.logEnabled[customerID], nil
}

func day(n int) time.Time {
	return time.Date(2026, time.July, n, 10, 0, 0, 0, time.Local)
}

func buildLogDataset(customerID uuid.UUID) []models.ServiceLog {
	other := uuid.New()
	return []models.ServiceLog{
		{ID: uuid.New(), CustomerID: customerID, WorkDate: day(1), Comment: "Fixed the water LEAK in unit 3", WorkerName: "Sato", Status: models.LogPublished},
		{ID: uuid.New(), CustomerID: customerID, WorkDate: day(2), Comment: "routine forwarding", WorkerName: "Leakey", Status: models.LogPublished},
		{ID: uuid.New(), CustomerID: customerID, WorkDate: day(3), Comment: "mail sorted", WorkerName: "Tanaka", Status: models.LogPublished},
		{ID: uuid.New(), CustomerID: customerID, WorkDate: day(4), Comment: "checked for leaks again", WorkerName: "Sato", Status: models.LogPublished},
		{ID: uuid.New(), CustomerID: customerID, WorkDate: day(5), Comment: "leak inspection draft", WorkerName: "Sato", Status: models.LogDraft},
		{ID: uuid.New(), CustomerID: other, WorkDate: day(6), Comment: "other customer leak", WorkerName: "Sato", Status: models.LogPublished},
	}
}

func TestQuery_KeywordMatchesCommentOrWorkerName(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{logs: buildLogDataset(customerID)}
	q := NewLogQuery(store)

	published := models.LogPublished
	logs, total, err := q.Query(LogFilter{
		CustomerID: &customerID,
		Status:     &published,
		Keyword:    "leak",
	})
	require.NoError(t, err)

	// Case-insensitive substring over comment OR worker name; draft and
	// other-customer rows are already excluded by the structured filters.
	assert.Equal(t, 3, total)
	assert.Len(t, logs, total)
	for _, log := range logs {
		assert.Equal(t, customerID, log.CustomerID)
		assert.Equal(t, models.LogPublished, log.Status)
	}
}

func TestQuery_TotalReflectsKeywordFilteredCount(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{logs: buildLogDataset(customerID)}
	q := NewLogQuery(store)

	logs, total, err := q.Query(LogFilter{CustomerID: &customerID, Keyword: "leak", Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	assert.Len(t, logs, 2)
}

func TestQuery_PaginationNeverRepeatsIDs(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{logs: buildLogDataset(customerID)}
	q := NewLogQuery(store)

	first, total, err := q.Query(LogFilter{CustomerID: &customerID, Limit: 2, Offset: 0})
	require.NoError(t, err)
	second, _, err := q.Query(LogFilter{CustomerID: &customerID, Limit: 2, Offset: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	seen := make(map[uuid.UUID]bool)
	for _, log := range first {
		seen[log.ID] = true
	}
	for _, log := range second {
		assert.False(t, seen[log.ID], "page two repeated id %s", log.ID)
	}
}

func TestQuery_SortedByWorkDateDescending(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{logs: buildLogDataset(customerID)}
	q := NewLogQuery(store)

	logs, _, err := q.Query(LogFilter{CustomerID: &customerID})
	require.NoError(t, err)
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].WorkDate.After(logs[i-1].WorkDate))
	}
}

func TestQuery_OffsetPastEndIsEmpty(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{logs: buildLogDataset(customerID)}
	q := NewLogQuery(store)

	logs, total, err := q.Query(LogFilter{CustomerID: &customerID, Limit: 10, Offset: 100})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, logs)
}

func TestQuery_StoreFailurePropagates(t *testing.T) {
	store := &fakeLogStore{findErr: errors.New("store unavailable")}
	q := NewLogQuery(store)

	_, _, err := q.Query(LogFilter{})
	assert.Error(t, err)
}

func TestQuery_ImageCapHolds(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{logs: buildLogDataset(customerID)}
	q := NewLogQuery(store)

	logs, _, err := q.Query(LogFilter{})
	require.NoError(t, err)
	for _, log := range logs {
		assert.LessOrEqual(t, len(log.Images), models.MaxLogImages)
	}
}

func TestPortalQuery_ForcesOwnCustomerAndPublished(t *testing.T) {
	customerID := uuid.New()
	store := &fakeLogStore{
		logs:       buildLogDataset(customerID),
		logEnabled: map[uuid.UUID]bool{customerID: true},
	}
	q := NewLogQuery(store)

	logs, total, err := q.PortalQuery(customerID, "all", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	for _, log := range logs {
		assert.Equal(t, customerID, log.CustomerID)
		assert.Equal(t, models.LogPublished, log.Status)
	}
}

// The gate is customer-specific: an ineligible customer short-circuits to
// the empty state without the log query ever running, even though the store
// answers queries for other customers without error.
func TestPortalQuery_GateShortCircuitsWithoutQuerying(t *testing.T) {
	eligible := uuid.New()
	ineligible := uuid.New()
	store := &fakeLogStore{
		logs:       buildLogDataset(eligible),
		logEnabled: map[uuid.UUID]bool{eligible: true},
	}
	q := NewLogQuery(store)

	logs, total, err := q.PortalQuery(ineligible, "all", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Zero(t, total)
	assert.Zero(t, store.findCalls)

	_, total, err = q.PortalQuery(eligible, "all", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, store.findCalls)
}

func TestPortalQuery_PeriodLimitsStartDate(t *testing.T) {
	customerID := uuid.New()
	now := time.Now()
	store := &fakeLogStore{
		logs: []models.ServiceLog{
			{ID: uuid.New(), CustomerID: customerID, WorkDate: now.AddDate(0, 0, -1), Comment: "recent", Status: models.LogPublished},
			{ID: uuid.New(), CustomerID: customerID, WorkDate: now.AddDate(-1, 0, 0), Comment: "a year ago", Status: models.LogPublished},
		},
		logEnabled: map[uuid.UUID]bool{customerID: true},
	}
	q := NewLogQuery(store)

	_, total, err := q.PortalQuery(customerID, "past_6_months", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = q.PortalQuery(customerID, "all", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
