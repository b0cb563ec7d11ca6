package document

import (
	"context"
	"encoding/json"
	"time"

	"github.com/darshan103/chatpdfbackend/models"

	"github.com/go-redis/redis/v8"
)

const (
	documentKeyPrefix = "doc:"
	latestDocumentKey = "doc:latest"
)

// RedisDocumentStore is a DocumentStore backed by redis, for deployments
// running more than one server process. TTL eviction is delegated to redis.
type RedisDocumentStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDocumentStore(client *redis.Client, ttl time.Duration) *RedisDocumentStore {
	return &RedisDocumentStore{client: client, ttl: ttl}
}

func (s *RedisDocumentStore) Put(ctx context.Context, doc *models.Document) error {
	type storedDocument struct {
		models.Document
		Text string `json:"text"`
	}
	b, err := json.Marshal(storedDocument{Document: *doc, Text: doc.Text})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, documentKeyPrefix+doc.ID, b, s.ttl).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, latestDocumentKey, doc.ID, s.ttl).Err()
}

func (s *RedisDocumentStore) Get(ctx context.Context, id string) (*models.Document, error) {
	data, err := s.client.Get(ctx, documentKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stored struct {
		models.Document
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, err
	}
	doc := stored.Document
	doc.Text = stored.Text
	return &doc, nil
}

func (s *RedisDocumentStore) Latest(ctx context.Context) (*models.Document, error) {
	id, err := s.client.Get(ctx, latestDocumentKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
