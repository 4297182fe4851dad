package models

import "time"

type ClientStatus string

const (
	ClientActive    ClientStatus = "active"
	ClientSuspended ClientStatus = "suspended"
)

// Subscription is a client's plan
type Subscription struct {
	Plan      string     `bson:"plan" json:"plan"`     // free, basic, pro
	Status    string     `bson:"status" json:"status"` // active, cancelled
	StartDate time.Time  `bson:"start_date" json:"startDate"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

// Client represents a customer shown in the admin panel
type Client struct {
	ID           string        `bson:"_id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	Phone        string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Status       ClientStatus  `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	Subscription *Subscription `bson:"subscription,omitempty" json:"subscription,omitempty"`
}

// Clone returns a copy of c that shares no pointers with it
func (c Client) Clone() Client {
	if c.Subscription != nil {
		sub := *c.Subscription
		if sub.EndDate != nil {
			end := *sub.EndDate
			sub.EndDate = &end
		}
		c.Subscription = &sub
	}
	return c
}

// ClientUpdate carries the fields an admin may change; nil fields are left untouched
type ClientUpdate struct {
	Name         *string       `json:"name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Status       *ClientStatus `json:"status,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// Apply merges the update into c
func (u ClientUpdate) Apply(c *Client) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Subscription != nil {
		c.Subscription = u.Subscription
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentRefunded, PaymentCancelled:
		return true
	}
	return false
}

// Payment represents a charge made by a client
type Payment struct {
	ID          string        `bson:"_id" json:"id"`
	ClientID    string        `bson:"client_id" json:"clientId"`
	ClientName  string        `bson:"client_name" json:"clientName"`
	Amount      float64       `bson:"amount" json:"amount"`
	Status      PaymentStatus `bson:"status" json:"status"`
	Date        time.Time     `bson:"date" json:"date"`
	Method      string        `bson:"method" json:"method"`
	Description string        `bson:"description" json:"description"`
}

// PlanLimits is the number of analyses allowed per plan
type PlanLimits struct {
	Free  int `bson:"free" json:"free"`
	Basic int `bson:"basic" json:"basic"`
	Pro   int `bson:"pro" json:"pro"`
}

// Settings is the system configuration edited from the admin panel
type Settings struct {
	GeminiKey string     `bson:"gemini_key" json:"geminiKey"`
	OpenAIKey string     `bson:"openai_key" json:"openaiKey"`
	Limits    PlanLimits `bson:"limits" json:"limits"`
}

// DefaultSettings returns the settings the system starts with
func DefaultSettings() Settings {
	return Settings{Limits: PlanLimits{Free: 10, Basic: 100, Pro: 1000}}
}

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	TotalClients   int     `json:"totalClients"`
	ActiveClients  int     `json:"activeClients"`
	TotalRevenue   float64 `json:"totalRevenue"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	TotalAnalyses  int     `json:"totalAnalyses"`
	TodayAnalyses  int     `json:"todayAnalyses"`
}

// RecentActivity is an entry of the dashboard activity feed
type RecentActivity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // signup, payment, analysis, cancellation
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	ClientName  string    `json:"clientName"`
}
