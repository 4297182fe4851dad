package store

import (
	"time"

	"github.com/socialboost/vision/models"
	"golang.org/x/crypto/bcrypt"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedClients returns the clients the admin panel starts with
func SeedClients() []models.Client {
	return []models.Client{
		{
			ID:        "1",
			Name:      "João Silva",
			Email:     "joao@example.com",
			Phone:     "(11) 98765-4321",
			Status:    models.ClientActive,
			CreatedAt: day(2024, time.January, 15),
			Subscription: &models.Subscription{
				Plan: "pro", Status: "active", StartDate: day(2024, time.January, 15),
			},
		},
		{
			ID:        "2",
			Name:      "Maria Santos",
			Email:     "maria@example.com",
			Phone:     "(21) 99876-5432",
			Status:    models.ClientActive,
			CreatedAt: day(2024, time.February, 20),
			Subscription: &models.Subscription{
				Plan: "basic", Status: "active", StartDate: day(2024, time.February, 20),
			},
		},
		{
			ID:        "3",
			Name:      "Pedro Costa",
			Email:     "pedro@example.com",
			Status:    models.ClientSuspended,
			CreatedAt: day(2024, time.March, 10),
			Subscription: &models.Subscription{
				Plan: "free", Status: "active", StartDate: day(2024, time.March, 10),
			},
		},
	}
}

// SeedPayments returns the payments the admin panel starts with
func SeedPayments() []models.Payment {
	return []models.Payment{
		{
			ID: "PAY001", ClientID: "1", ClientName: "João Silva", Amount: 99.90,
			Status: models.PaymentCompleted, Date: day(2024, time.November, 1),
			Method: "Cartão de Crédito", Description: "Plano Pro - Mensal",
		},
		{
			ID: "PAY002", ClientID: "2", ClientName: "Maria Santos", Amount: 49.90,
			Status: models.PaymentCompleted, Date: day(2024, time.November, 5),
			Method: "PIX", Description: "Plano Basic - Mensal",
		},
		{
			ID: "PAY003", ClientID: "1", ClientName: "João Silva", Amount: 99.90,
			Status: models.PaymentPending, Date: day(2024, time.November, 27),
			Method: "Cartão de Crédito", Description: "Plano Pro - Mensal",
		},
	}
}

// SeedAdmin returns the default administrator, Admin/Admin
func SeedAdmin() (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Admin"), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:        "admin",
		Login:     "Admin",
		Name:      "Administrador",
		Email:     "admin@socialboost.com",
		Password:  string(hash),
		CreatedAt: day(2024, time.January, 1),
	}, nil
}
