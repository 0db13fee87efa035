package controllers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"virtualoffice-backend/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest points the package wiring at a sqlmock-backed DB so
// handlers can run without a live Postgres.
func setupHandlerTest(t *testing.T) sqlmock.Sqlmock {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	config.DB = gdb
	config.Logger = zap.NewNop()
	Init()

	t.Cleanup(func() { db.Close() })
	return mock
}

func performRequest(handler gin.HandlerFunc, method, path, body string, params ...gin.Param) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params(params)

	handler(c)
	return recorder
}
