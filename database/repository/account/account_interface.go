package accountRepo

import "github.com/darshan103/chatpdfbackend/models"

// AccountRepository defines methods for local account data access.
type AccountRepository interface {
	// GetByEmail retrieves an account by its email address.
	// Returns nil (without error) when no account matches.
	GetByEmail(email string) (*models.Account, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// Update modifies an existing account record.
	Update(account *models.Account) error
}
