package models

import "time"

// User represents a registered user
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Login     string    `bson:"login" json:"login"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // bcrypt hash, never returned in JSON
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
