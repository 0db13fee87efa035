package services

import (
	"errors"
	"time"

	"virtualoffice-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrCustomerNotFound is the distinct not-found condition for lifecycle
// operations; controllers map it to a 404.
var ErrCustomerNotFound = errors.New("customer not found")

// SystemActorName labels mutations performed without an acting user.
const SystemActorName = "system"

// Warning captures a best-effort side effect that failed. The primary
// mutation still succeeded; the admin may retry the secondary step manually.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CustomerStore is the persistence boundary for lifecycle operations.
type CustomerStore interface {
	FindByID(id uuid.UUID) (*models.Customer, error)
	Save(customer *models.Customer) error
	Create(customer *models.Customer) error
}

// ProvisionedAccount is returned from CreateWithAccount so the initial
// password can be shown to the admin exactly once.
type ProvisionedAccount struct {
	AccountID       uuid.UUID `json:"accountId"`
	InitialPassword string    `json:"initialPassword"`
}

// CustomerLifecycle governs contract-status transitions and the side effects
// they cause: portal-account enable/disable, cancellation date stamping and
// activity records. The customer row update is always the success criterion;
// account and activity effects are best-effort and reported as warnings.
type CustomerLifecycle struct {
	store      CustomerStore
	accounts   AccountProvider
	activities ActivityAppender
	logger     *zap.Logger
}

func NewCustomerLifecycle(store CustomerStore, accounts AccountProvider, activities ActivityAppender, logger *zap.Logger) *CustomerLifecycle {
	return &CustomerLifecycle{store: store, accounts: accounts, activities: activities, logger: logger}
}

// Cancel marks the customer cancelled, stamps the contract end date and
// best-effort disables the matching portal account. Account failures never
// roll back or fail the cancellation.
func (l *CustomerLifecycle) Cancel(customerID, actorID uuid.UUID, actorName string) ([]Warning, error) {
	customer, err := l.store.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	email := customer.Email

	now := time.Now()
	customer.ContractStatus = models.ContractCancelled
	customer.ContractEndDate = &now
	customer.UpdatedByUserID = actorID
	if err := l.store.Save(customer); err != nil {
		return nil, err
	}

	var warnings []Warning
	if email != "" {
		if err := l.accounts.SetDisabled(email, true); err != nil {
			l.logger.Warn("failed to disable portal account on cancel",
				zap.String("customerId", customerID.String()), zap.Error(err))
			warnings = append(warnings, Warning{
				Code:    "account_disable_failed",
				Message: "customer cancelled but portal account could not be disabled: " + err.Error(),
			})
		}
	}

	l.activities.Record(models.ActivityCustomerCancelled, customer.ID, customer.CompanyName,
		actorID, resolveActorName(actorID, actorName), nil)

	return warnings, nil
}

// Reactivate is the mirror of Cancel: status back to active, contract end
// date cleared, portal account best-effort re-enabled.
func (l *CustomerLifecycle) Reactivate(customerID, actorID uuid.UUID, actorName string) ([]Warning, error) {
	customer, err := l.store.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	email := customer.Email

	customer.ContractStatus = models.ContractActive
	customer.ContractEndDate = nil
	customer.UpdatedByUserID = actorID
	if err := l.store.Save(customer); err != nil {
		return nil, err
	}

	var warnings []Warning
	if email != "" {
		if err := l.accounts.SetDisabled(email, false); err != nil {
			l.logger.Warn("failed to re-enable portal account on reactivate",
				zap.String("customerId", customerID.String()), zap.Error(err))
			warnings = append(warnings, Warning{
				Code:    "account_enable_failed",
				Message: "customer reactivated but portal account could not be re-enabled: " + err.Error(),
			})
		}
	}

	l.activities.Record(models.ActivityCustomerReactivated, customer.ID, customer.CompanyName,
		actorID, resolveActorName(actorID, actorName), nil)

	return warnings, nil
}

// CreateWithAccount persists a new customer and, when an email is present,
// provisions a portal account for it. Provisioning failure leaves the
// customer created and comes back as a warning so the admin can retry.
func (l *CustomerLifecycle) CreateWithAccount(customer *models.Customer, actorID uuid.UUID, actorName string) (*ProvisionedAccount, []Warning, error) {
	customer.CreatedByUserID = actorID
	customer.UpdatedByUserID = actorID
	if err := l.store.Create(customer); err != nil {
		return nil, nil, err
	}

	var account *ProvisionedAccount
	var warnings []Warning
	if customer.Email != "" {
		accountID, password, err := l.accounts.Provision(customer.Email, customer.ID, models.RoleUser)
		switch {
		case errors.Is(err, ErrEmailRegistered):
			warnings = append(warnings, Warning{
				Code:    "email_already_registered",
				Message: "customer created but the email already has a portal account",
			})
		case err != nil:
			l.logger.Warn("failed to provision portal account",
				zap.String("customerId", customer.ID.String()), zap.Error(err))
			warnings = append(warnings, Warning{
				Code:    "account_provision_failed",
				Message: "customer created but the portal account could not be provisioned",
			})
		default:
			account = &ProvisionedAccount{AccountID: accountID, InitialPassword: password}
		}
	}

	l.activities.Record(models.ActivityCustomerCreated, customer.ID, customer.CompanyName,
		actorID, resolveActorName(actorID, actorName), nil)

	return account, warnings, nil
}

// RecordUpdate appends the activity entry for a plain customer edit.
func (l *CustomerLifecycle) RecordUpdate(customer *models.Customer, actorID uuid.UUID, actorName string) {
	l.activities.Record(models.ActivityCustomerUpdated, customer.ID, customer.CompanyName,
		actorID, resolveActorName(actorID, actorName), nil)
}

func resolveActorName(actorID uuid.UUID, actorName string) string {
	if actorID == uuid.Nil || actorName == "" {
		return SystemActorName
	}
	return actorName
}

type gormCustomerStore struct {
	db *gorm.DB
}

func NewGormCustomerStore(db *gorm.DB) CustomerStore {
	return &gormCustomerStore{db: db}
}

func (s *gormCustomerStore) FindByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *gormCustomerStore) Save(customer *models.Customer) error {
	return s.db.Save(customer).Error
}

func (s *gormCustomerStore) Create(customer *models.Customer) error {
	return s.db.Create(customer).Error
}
