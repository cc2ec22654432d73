// Package redis provides a Redis-backed document store. Each collection is a
// hash whose entries map document ID to the JSON-encoded document body.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
)

const (
	// DefaultKeyPrefix namespaces collection keys when no prefix is configured.
	DefaultKeyPrefix = "docstore"

	// DefaultMaxTxRetries bounds optimistic update retries on concurrent writes.
	DefaultMaxTxRetries = 10
)

// Config holds Redis connection configuration.
type Config struct {
	// URL is a redis:// or rediss:// URL. When set, Host, Port, Password and DB are ignored.
	URL          string
	Host         string
	Port         string
	Password     string
	DB           int
	KeyPrefix    string
	MaxTxRetries int
}

// Client implements the docdb.Client interface for Redis.
type Client struct {
	client       *redis.Client
	keyPrefix    string
	maxTxRetries int
}

// NewClient creates a new Redis document store client and verifies the connection.
func NewClient(cfg Config) (*Client, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return newClient(client, cfg), nil
}

// NewClientFromRedis wraps an existing go-redis client.
func NewClientFromRedis(client *redis.Client, cfg Config) *Client {
	return newClient(client, cfg)
}

func newClient(client *redis.Client, cfg Config) *Client {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	retries := cfg.MaxTxRetries
	if retries <= 0 {
		retries = DefaultMaxTxRetries
	}
	return &Client{
		client:       client,
		keyPrefix:    prefix,
		maxTxRetries: retries,
	}
}

// Collection returns a reference to the named collection.
func (c *Client) Collection(name string) docdb.Collection {
	return &Collection{
		client:       c.client,
		name:         name,
		key:          c.collectionKey(name),
		maxTxRetries: c.maxTxRetries,
	}
}

// Ping checks if the Redis connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}
	return nil
}

// collectionKey returns the hash key holding a collection.
func (c *Client) collectionKey(name string) string {
	return fmt.Sprintf("%s:collection:%s", c.keyPrefix, name)
}
