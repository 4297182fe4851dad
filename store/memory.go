package store

import (
	"context"
	"strings"
	"sync"

	"github.com/socialboost/vision/models"
)

// MemoryStore keeps everything in process memory behind one mutex
type MemoryStore struct {
	mu       sync.Mutex
	clients  []models.Client
	payments []models.Payment
	settings models.Settings
	users    []models.User
}

// NewMemoryStore creates a store seeded with the demo clients, payments and admin user
func NewMemoryStore() (*MemoryStore, error) {
	admin, err := SeedAdmin()
	if err != nil {
		return nil, err
	}
	return &MemoryStore{
		clients:  SeedClients(),
		payments: SeedPayments(),
		settings: models.DefaultSettings(),
		users:    []models.User{admin},
	}, nil
}

func (s *MemoryStore) ListClients(_ context.Context) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = c.Clone()
	}
	return out, nil
}

func (s *MemoryStore) GetClient(_ context.Context, id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		return nil, ErrClientNotFound
	}
	c := s.clients[i].Clone()
	return &c, nil
}

func (s *MemoryStore) SaveClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(c.ID)
	if i < 0 {
		return ErrClientNotFound
	}
	s.clients[i] = c.Clone()
	return nil
}

func (s *MemoryStore) DeleteClient(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		return ErrClientNotFound
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return nil
}

func (s *MemoryStore) clientIndex(id string) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) ListPayments(_ context.Context) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

func (s *MemoryStore) GetPayment(_ context.Context, id string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrPaymentNotFound
}

func (s *MemoryStore) SavePayment(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == p.ID {
			s.payments[i] = *p
			return nil
		}
	}
	return ErrPaymentNotFound
}

func (s *MemoryStore) GetSettings(_ context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

func (s *MemoryStore) SaveSettings(_ context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

func (s *MemoryStore) FindUser(_ context.Context, loginOrEmail string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Login == loginOrEmail || strings.EqualFold(u.Email, loginOrEmail) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Login == u.Login || strings.EqualFold(existing.Email, u.Email) {
			return ErrUserExists
		}
	}
	s.users = append(s.users, *u)
	return nil
}
