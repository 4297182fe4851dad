package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/socialboost/vision/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	settingsID   = "system"
	queryTimeout = 10 * time.Second
)

// MongoStore persists the back-office data in MongoDB
type MongoStore struct {
	clients  *mongo.Collection
	payments *mongo.Collection
	settings *mongo.Collection
	users    *mongo.Collection
}

// NewMongoStore uses the clients, payments, settings and users collections of db
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		clients:  db.Collection("clients"),
		payments: db.Collection("payments"),
		settings: db.Collection("settings"),
		users:    db.Collection("users"),
	}
}

// Seed inserts the demo data into empty collections
func (s *MongoStore) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	n, err := s.clients.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count clients: %w", err)
	}
	if n == 0 {
		docs := make([]interface{}, 0, 3)
		for _, c := range SeedClients() {
			docs = append(docs, c)
		}
		if _, err := s.clients.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed clients: %w", err)
		}
		log.Println("Seeded clients collection")
	}

	n, err = s.payments.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count payments: %w", err)
	}
	if n == 0 {
		docs := make([]interface{}, 0, 3)
		for _, p := range SeedPayments() {
			docs = append(docs, p)
		}
		if _, err := s.payments.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed payments: %w", err)
		}
		log.Println("Seeded payments collection")
	}

	admin, err := SeedAdmin()
	if err != nil {
		return err
	}
	if err := s.CreateUser(ctx, &admin); err != nil && !errors.Is(err, ErrUserExists) {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

func (s *MongoStore) ListClients(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.clients.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}

func (s *MongoStore) GetClient(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c models.Client
	err := s.clients.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &c, nil
}

func (s *MongoStore) SaveClient(ctx context.Context, c *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.clients.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (s *MongoStore) DeleteClient(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.clients.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (s *MongoStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := s.payments.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

func (s *MongoStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Payment
	err := s.payments.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

func (s *MongoStore) SavePayment(ctx context.Context, p *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.payments.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (s *MongoStore) GetSettings(ctx context.Context) (models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var settings models.Settings
	err := s.settings.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *MongoStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.settings.ReplaceOne(ctx, bson.M{"_id": settingsID}, settings, opts); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *MongoStore) FindUser(ctx context.Context, loginOrEmail string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"$or": bson.A{
		bson.M{"login": loginOrEmail},
		bson.M{"email": loginOrEmail},
	}})
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u models.User
	err := s.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	_, err := s.findUser(ctx, bson.M{"$or": bson.A{
		bson.M{"login": u.Login},
		bson.M{"email": u.Email},
	}})
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
