package models

import "time"

// Resource is a bookable room or studio.
type Resource struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"` // canonical display name, e.g. "Estúdio Grande"
	Slug         string    `bson:"slug" json:"slug"`
	PricePerHour float64   `bson:"price_per_hour" json:"price_per_hour"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
