package models

import "time"

// Customer is a chat contact identified by phone number.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string    `bson:"phone" json:"phone"` // e.g. "+5511999990000"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
