package googleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/darshan103/chatpdfbackend/database"
	"github.com/darshan103/chatpdfbackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGoogleAccountRepo implements GoogleAccountRepository using MongoDB.
type MongoGoogleAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoGoogleAccountRepo creates a new instance of GoogleAccountRepository using MongoDB.
func NewMongoGoogleAccountRepo() GoogleAccountRepository {
	coll := database.MongoClient.Database("chatpdf").Collection("googleusers")
	repo := &MongoGoogleAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates a unique index on email so a federated account is
// created at most once per address.
func (r *MongoGoogleAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEmail retrieves a federated account by its email address.
func (r *MongoGoogleAccountRepo) GetByEmail(email string) (*models.GoogleAccount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var account models.GoogleAccount
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch google account with email %s: %w", email, err)
	}
	return &account, nil
}

// Create inserts a new federated account document.
func (r *MongoGoogleAccountRepo) Create(account *models.GoogleAccount) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create google account: %w", err)
	}
	return nil
}
