package store

import (
	"context"
	"errors"

	"github.com/socialboost/vision/models"
)

var (
	ErrClientNotFound  = errors.New("Cliente não encontrado")
	ErrPaymentNotFound = errors.New("Pagamento não encontrado")
	ErrUserNotFound    = errors.New("Usuário não encontrado")
	ErrUserExists      = errors.New("Usuário ou email já cadastrado")
)

// ClientStore persists the clients shown in the admin panel
type ClientStore interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	// SaveClient replaces an existing client; it never creates one
	SaveClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id string) error
}

// PaymentStore persists client payments
type PaymentStore interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	SavePayment(ctx context.Context, p *models.Payment) error
}

// SettingsStore holds the single system settings document
type SettingsStore interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
}

// UserStore holds registered users
type UserStore interface {
	// FindUser matches either the login or the e-mail
	FindUser(ctx context.Context, loginOrEmail string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

// Store bundles every store the services need
type Store interface {
	ClientStore
	PaymentStore
	SettingsStore
	UserStore
}
