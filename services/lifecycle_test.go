package services

import (
	"errors"
	"testing"
	"time"

	"virtualoffice-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomerStore struct {
	customers map[uuid.UUID]*models.Customer
	saveErr   error
}

func newFakeCustomerStore(customers ...*models.Customer) *fakeCustomerStore {
	s := &fakeCustomerStore{customers: make(map[uuid.UUID]*models.Customer)}
	for _, c := range customers {
		s.customers[c.ID] = c
	}
	return s
}

func (s *fakeCustomerStore) FindByID(id uuid.UUID) (*models.Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCustomerStore) Save(c *models.Customer) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *c
	s.customers[c.ID] = &copied
	return nil
}

func (s *fakeCustomerStore) Create(c *models.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	copied := *c
	s.customers[c.ID] = &copied
	return nil
}

type fakeAccounts struct {
	disabled     map[string]bool
	setErr       error
	provisionErr error
	provisioned  []string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{disabled: make(map[string]bool)}
}

func (a *fakeAccounts) Provision(email string, customerID uuid.UUID, role string) (uuid.UUID, string, error) {
	if a.provisionErr != nil {
		return uuid.Nil, "", a.provisionErr
	}
	a.provisioned = append(a.provisioned, email)
	return uuid.New(), "Xy3!abcdeFg9", nil
}

func (a *fakeAccounts) SetDisabled(email string, disabled bool) error {
	if a.setErr != nil {
		return a.setErr
	}
	a.disabled[email] = disabled
	return nil
}

type fakeActivities struct {
	types []models.ActivityType
}

func (f *fakeActivities) Record(activityType models.ActivityType, entityID uuid.UUID, entityName string, actorID uuid.UUID, actorName string, metadata models.JSONB) {
	f.types = append(f.types, activityType)
}

func newLifecycleFixture(customers ...*models.Customer) (*CustomerLifecycle, *fakeCustomerStore, *fakeAccounts, *fakeActivities) {
	store := newFakeCustomerStore(customers...)
	accounts := newFakeAccounts()
	activities := &fakeActivities{}
	lc := NewCustomerLifecycle(store, accounts, activities, zap.NewNop())
	return lc, store, accounts, activities
}

func activeCustomer(email string) *models.Customer {
	return &models.Customer{
		ID:             uuid.New(),
		CompanyName:    "テスト商事",
		ContactName:    "山田",
		Email:          email,
		ContractStatus: models.ContractActive,
	}
}

func TestCancel_SetsStatusAndEndDate(t *testing.T) {
	customer := activeCustomer("tenant@example.com")
	lc, store, accounts, activities := newLifecycleFixture(customer)

	before := time.Now()
	warnings, err := lc.Cancel(customer.ID, uuid.New(), "admin")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	saved := store.customers[customer.ID]
	assert.Equal(t, models.ContractCancelled, saved.ContractStatus)
	require.NotNil(t, saved.ContractEndDate)
	assert.WithinDuration(t, before, *saved.ContractEndDate, 5*time.Second)

	assert.True(t, accounts.disabled["tenant@example.com"])
	assert.Equal(t, []models.ActivityType{models.ActivityCustomerCancelled}, activities.types)
}

func TestCancelReactivate_RoundTripClearsEndDate(t *testing.T) {
	customer := activeCustomer("tenant@example.com")
	lc, store, accounts, _ := newLifecycleFixture(customer)

	// Repeating the pair must never leave a stale end date behind.
	for i := 0; i < 3; i++ {
		_, err := lc.Cancel(customer.ID, uuid.Nil, "")
		require.NoError(t, err)
		saved := store.customers[customer.ID]
		assert.Equal(t, models.ContractCancelled, saved.ContractStatus)
		assert.NotNil(t, saved.ContractEndDate)

		_, err = lc.Reactivate(customer.ID, uuid.Nil, "")
		require.NoError(t, err)
		saved = store.customers[customer.ID]
		assert.Equal(t, models.ContractActive, saved.ContractStatus)
		assert.Nil(t, saved.ContractEndDate)
		assert.False(t, accounts.disabled["tenant@example.com"])
	}
}

func TestCancel_SucceedsWhenAccountDisableFails(t *testing.T) {
	customer := activeCustomer("tenant@example.com")
	lc, store, accounts, _ := newLifecycleFixture(customer)
	accounts.setErr = errors.New("identity provider down")

	warnings, err := lc.Cancel(customer.ID, uuid.New(), "admin")
	require.NoError(t, err)

	saved := store.customers[customer.ID]
	assert.Equal(t, models.ContractCancelled, saved.ContractStatus)
	assert.NotNil(t, saved.ContractEndDate)

	require.Len(t, warnings, 1)
	assert.Equal(t, "account_disable_failed", warnings[0].Code)
}

func TestReactivate_SucceedsWhenAccountEnableFails(t *testing.T) {
	customer := activeCustomer("tenant@example.com")
	customer.ContractStatus = models.ContractCancelled
	now := time.Now()
	customer.ContractEndDate = &now

	lc, store, accounts, _ := newLifecycleFixture(customer)
	accounts.setErr = errors.New("identity provider down")

	warnings, err := lc.Reactivate(customer.ID, uuid.New(), "admin")
	require.NoError(t, err)

	saved := store.customers[customer.ID]
	assert.Equal(t, models.ContractActive, saved.ContractStatus)
	assert.Nil(t, saved.ContractEndDate)

	require.Len(t, warnings, 1)
	assert.Equal(t, "account_enable_failed", warnings[0].Code)
}

func TestCancel_NoAccountCallWithoutEmail(t *testing.T) {
	customer := activeCustomer("")
	lc, _, accounts, _ := newLifecycleFixture(customer)
	accounts.setErr = errors.New("should never be called")

	warnings, err := lc.Cancel(customer.ID, uuid.New(), "admin")
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestCancel_CustomerNotFound(t *testing.T) {
	lc, _, _, _ := newLifecycleFixture()

	_, err := lc.Cancel(uuid.New(), uuid.New(), "admin")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCancel_StoreFailureIsFatal(t *testing.T) {
	customer := activeCustomer("tenant@example.com")
	lc, store, accounts, _ := newLifecycleFixture(customer)
	store.saveErr = errors.New("write rejected")

	_, err := lc.Cancel(customer.ID, uuid.New(), "admin")
	assert.Error(t, err)
	// No secondary effect may run when the primary mutation failed.
	assert.Empty(t, accounts.disabled)
}

func TestCreateWithAccount_ProvisionsWhenEmailPresent(t *testing.T) {
	lc, store, accounts, activities := newLifecycleFixture()

	customer := activeCustomer("new@example.com")
	account, warnings, err := lc.CreateWithAccount(customer, uuid.New(), "admin")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, account)
	assert.NotEmpty(t, account.InitialPassword)
	assert.Equal(t, []string{"new@example.com"}, accounts.provisioned)
	assert.Contains(t, store.customers, customer.ID)
	assert.Equal(t, []models.ActivityType{models.ActivityCustomerCreated}, activities.types)
}

func TestCreateWithAccount_SkipsProvisionWithoutEmail(t *testing.T) {
	lc, store, accounts, _ := newLifecycleFixture()

	customer := activeCustomer("")
	account, warnings, err := lc.CreateWithAccount(customer, uuid.New(), "admin")
	require.NoError(t, err)
	assert.Nil(t, account)
	assert.Empty(t, warnings)
	assert.Empty(t, accounts.provisioned)
	assert.Contains(t, store.customers, customer.ID)
}

func TestCreateWithAccount_DuplicateEmailIsWarningNotError(t *testing.T) {
	lc, store, accounts, _ := newLifecycleFixture()
	accounts.provisionErr = ErrEmailRegistered

	customer := activeCustomer("taken@example.com")
	account, warnings, err := lc.CreateWithAccount(customer, uuid.New(), "admin")
	require.NoError(t, err)

	assert.Nil(t, account)
	require.Len(t, warnings, 1)
	assert.Equal(t, "email_already_registered", warnings[0].Code)
	// Customer record stays created regardless.
	assert.Contains(t, store.customers, customer.ID)
}

func TestCreateWithAccount_GenericProvisionFailureIsWarning(t *testing.T) {
	lc, store, accounts, _ := newLifecycleFixture()
	accounts.provisionErr = errors.New("identity provider down")

	customer := activeCustomer("new@example.com")
	account, warnings, err := lc.CreateWithAccount(customer, uuid.New(), "admin")
	require.NoError(t, err)

	assert.Nil(t, account)
	require.Len(t, warnings, 1)
	assert.Equal(t, "account_provision_failed", warnings[0].Code)
	assert.Contains(t, store.customers, customer.ID)
}
