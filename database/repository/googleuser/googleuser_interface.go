package googleRepo

import "github.com/darshan103/chatpdfbackend/models"

// GoogleAccountRepository defines methods for federated account data access.
type GoogleAccountRepository interface {
	// GetByEmail retrieves a federated account by its email address.
	// Returns nil (without error) when no account matches.
	GetByEmail(email string) (*models.GoogleAccount, error)
	// Create inserts a new federated account record.
	Create(account *models.GoogleAccount) error
}
