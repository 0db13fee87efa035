package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeleteServiceLog_RemovesImageRows(t *testing.T) {
	mock := setupHandlerTest(t)

	logID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "service_logs" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "service_log_images" WHERE log_id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	recorder := performRequest(DeleteServiceLog, http.MethodDelete,
		"/api/service-logs/"+logID.String(), "",
		gin.Param{Key: "id", Value: logID.String()})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteServiceLog_NotFound(t *testing.T) {
	mock := setupHandlerTest(t)

	logID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "service_logs" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	recorder := performRequest(DeleteServiceLog, http.MethodDelete,
		"/api/service-logs/"+logID.String(), "",
		gin.Param{Key: "id", Value: logID.String()})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
