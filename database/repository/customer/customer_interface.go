package customerRepo

import "reservabot/models"

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetByPhone retrieves a customer by phone number, nil when absent.
	GetByPhone(phone string) (*models.Customer, error)
	// GetOrCreateByPhone retrieves the customer for a phone number,
	// creating a bare record on first contact.
	GetOrCreateByPhone(phone string) (*models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
}
