package resourceRepo

import "reservabot/models"

// ResourceRepository defines methods for bookable resource data access.
type ResourceRepository interface {
	// GetByName retrieves a resource by canonical name (case-insensitive),
	// nil when absent.
	GetByName(name string) (*models.Resource, error)
	// GetFirst retrieves the first registered resource, nil when none exist.
	GetFirst() (*models.Resource, error)
	// GetAll retrieves all resources ordered by name.
	GetAll() ([]models.Resource, error)
	// Create inserts a new resource record.
	Create(resource *models.Resource) error
}
