// Package memory provides an in-process document store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// Client keeps every collection in memory. Data is lost on restart.
// Safe for concurrent use.
type Client struct {
	mu          sync.RWMutex
	collections map[string]map[string]models.Fields
}

// NewClient creates an empty in-memory store.
func NewClient() *Client {
	return &Client{
		collections: make(map[string]map[string]models.Fields),
	}
}

// Collection returns a reference to the named collection.
func (c *Client) Collection(name string) docdb.Collection {
	return &Collection{client: c, name: name}
}

// Ping always succeeds.
func (c *Client) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (c *Client) Close(ctx context.Context) error {
	return nil
}

// Collection implements docdb.Collection over the in-memory store.
type Collection struct {
	client *Client
	name   string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// List returns documents ordered by ID.
func (c *Collection) List(ctx context.Context, opts *docdb.ListOptions) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.client.mu.RLock()
	defer c.client.mu.RUnlock()

	docs := c.snapshot(func(models.Fields) bool { return true })
	if opts != nil && opts.Limit > 0 && int64(len(docs)) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

// Get returns the document or nil if absent.
func (c *Collection) Get(ctx context.Context, id string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.client.mu.RLock()
	defer c.client.mu.RUnlock()

	fields, ok := c.client.collections[c.name][id]
	if !ok {
		return nil, nil
	}
	return &models.Document{ID: id, Fields: fields.Clone()}, nil
}

// Set writes the full document body.
func (c *Collection) Set(ctx context.Context, id string, fields models.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()

	coll, ok := c.client.collections[c.name]
	if !ok {
		coll = make(map[string]models.Fields)
		c.client.collections[c.name] = coll
	}
	body := fields.Clone()
	if body == nil {
		body = models.Fields{}
	}
	coll[id] = body
	return nil
}

// Delete removes the document if present.
func (c *Collection) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()

	coll, ok := c.client.collections[c.name]
	if !ok {
		return nil
	}
	delete(coll, id)
	if len(coll) == 0 {
		delete(c.client.collections, c.name)
	}
	return nil
}

// Update applies field updates to an existing document.
func (c *Collection) Update(ctx context.Context, id string, updates []models.FieldUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()

	current, ok := c.client.collections[c.name][id]
	if !ok {
		return domainerrors.NewNotFoundError("document", c.name+"/"+id)
	}

	next, err := models.ApplyUpdates(current, updates)
	if err != nil {
		return domainerrors.NewStoreError("update document", err)
	}
	c.client.collections[c.name][id] = next
	return nil
}

// Where returns documents whose field, a dotted path, equals value.
func (c *Collection) Where(ctx context.Context, field string, value models.Value) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.client.mu.RLock()
	defer c.client.mu.RUnlock()

	return c.snapshot(func(fields models.Fields) bool {
		v, ok := fields.Lookup(field)
		return ok && v.Equal(value)
	}), nil
}

// snapshot copies matching documents ordered by ID. Callers hold the lock.
func (c *Collection) snapshot(match func(models.Fields) bool) []models.Document {
	coll := c.client.collections[c.name]
	ids := make([]string, 0, len(coll))
	for id, fields := range coll {
		if match(fields) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	docs := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, models.Document{ID: id, Fields: coll[id].Clone()})
	}
	return docs
}
