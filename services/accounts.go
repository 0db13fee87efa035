package services

import (
	"errors"

	"virtualoffice-backend/models"
	"virtualoffice-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEmailRegistered is returned when provisioning hits an email that
	// already has an account. Surfaced to admins as a distinct condition.
	ErrEmailRegistered = errors.New("email already registered")
	// ErrAccountNotFound is returned when no account matches the email.
	ErrAccountNotFound = errors.New("no account matches that email")
)

// AccountProvider is the portal-account collaborator. The lifecycle rules
// only ever provision accounts and flip their disabled flag; everything else
// about accounts belongs to the auth layer.
type AccountProvider interface {
	Provision(email string, customerID uuid.UUID, role string) (uuid.UUID, string, error)
	SetDisabled(email string, disabled bool) error
}

type userAccountProvider struct {
	db *gorm.DB
}

func NewUserAccountProvider(db *gorm.DB) AccountProvider {
	return &userAccountProvider{db: db}
}

// Provision creates a portal account with a freshly generated initial
// password and returns both so the admin can hand the password over.
func (p *userAccountProvider) Provision(email string, customerID uuid.UUID, role string) (uuid.UUID, string, error) {
	var existing models.User
	err := p.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return uuid.Nil, "", ErrEmailRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, "", err
	}

	password, err := utils.GenerateInitialPassword(utils.InitialPasswordLength)
	if err != nil {
		return uuid.Nil, "", err
	}

	user := models.User{
		Email:      email,
		Password:   password, // hashed in BeforeCreate hook
		Name:       email,    // default name is email, can be changed later
		Role:       role,
		CustomerID: &customerID,
	}
	if err := p.db.Create(&user).Error; err != nil {
		return uuid.Nil, "", err
	}

	return user.ID, password, nil
}

func (p *userAccountProvider) SetDisabled(email string, disabled bool) error {
	result := p.db.Model(&models.User{}).Where("email = ?", email).Update("disabled", disabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
