package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func cancelledCustomerRows(id uuid.UUID, endDate time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "company_type", "company_name", "contact_name", "email",
		"contract_status", "contract_end_date",
	}).AddRow(id.String(), "corporate", "Acme", "Sato", "sato@example.com",
		"cancelled", endDate)
}

func TestUpdateCustomer_RejectsStatusEditOutOfCancelled(t *testing.T) {
	mock := setupHandlerTest(t)

	customerID := uuid.New()
	endDate := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM "customers" WHERE id = .+`).
		WillReturnRows(cancelledCustomerRows(customerID, endDate))

	recorder := performRequest(UpdateCustomer, http.MethodPut,
		"/api/customers/"+customerID.String(),
		`{"contractStatus":"active"}`,
		gin.Param{Key: "id", Value: customerID.String()})

	// The edit is refused before any save, so the end date cannot go stale
	// and the account stays disabled until reactivate runs.
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "reactivate")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomer_AllowsNonStatusEditWhileCancelled(t *testing.T) {
	mock := setupHandlerTest(t)

	customerID := uuid.New()
	endDate := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM "customers" WHERE id = .+`).
		WillReturnRows(cancelledCustomerRows(customerID, endDate))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recorder := performRequest(UpdateCustomer, http.MethodPut,
		"/api/customers/"+customerID.String(),
		`{"notes":"forwarding paused"}`,
		gin.Param{Key: "id", Value: customerID.String()})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomer_RejectsStatusEditToCancelled(t *testing.T) {
	mock := setupHandlerTest(t)

	customerID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM "customers" WHERE id = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name", "contract_status"}).
			AddRow(customerID.String(), "Acme", "active"))

	recorder := performRequest(UpdateCustomer, http.MethodPut,
		"/api/customers/"+customerID.String(),
		`{"contractStatus":"cancelled"}`,
		gin.Param{Key: "id", Value: customerID.String()})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomer_RejectsCancelledInitialStatus(t *testing.T) {
	mock := setupHandlerTest(t)

	recorder := performRequest(CreateCustomer, http.MethodPost, "/api/customers",
		`{"companyType":"corporate","companyName":"Acme","contactName":"Sato","contractStatus":"cancelled"}`)

	// Rejected during validation; nothing reaches the store.
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
