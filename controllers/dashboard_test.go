package controllers

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDashboardOverview_CountFailureReturns500(t *testing.T) {
	mock := setupHandlerTest(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnError(sql.ErrConnDone)

	recorder := performRequest(GetDashboardOverview, http.MethodGet, "/api/dashboard", "")

	// A store failure must surface, not render as an all-zero dashboard.
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
