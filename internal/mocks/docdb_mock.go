// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// MockRawCollection is a mock implementation of docdb.RawCollection.
type MockRawCollection struct {
	mock.Mock
}

// FindOne finds a single document.
func (m *MockRawCollection) FindOne(ctx context.Context, filter interface{}) docdb.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(docdb.SingleResult)
}

// Find finds multiple documents.
func (m *MockRawCollection) Find(ctx context.Context, filter interface{}, opts *docdb.FindOptions) (docdb.Cursor, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docdb.Cursor), args.Error(1)
}

// ReplaceOne replaces a single document.
func (m *MockRawCollection) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, upsert bool) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, replacement, upsert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// UpdateOne updates a single document.
func (m *MockRawCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// DeleteOne deletes a single document.
func (m *MockRawCollection) DeleteOne(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}

// StaticSingleResult is a docdb.SingleResult holding a fixed document or error.
type StaticSingleResult struct {
	Doc   bson.M
	Error error
}

// Decode copies the held document into v, which must be a *bson.M.
func (r *StaticSingleResult) Decode(v interface{}) error {
	if r.Error != nil {
		return r.Error
	}
	target, ok := v.(*bson.M)
	if !ok {
		return fmt.Errorf("unsupported decode target %T", v)
	}
	*target = r.Doc
	return nil
}

// Err returns the held error.
func (r *StaticSingleResult) Err() error {
	return r.Error
}

// SliceCursor is a docdb.Cursor iterating over a fixed slice of documents.
type SliceCursor struct {
	Docs   []bson.M
	Error  error
	Closed bool
	pos    int
}

// Next advances the cursor.
func (c *SliceCursor) Next(ctx context.Context) bool {
	if c.pos >= len(c.Docs) {
		return false
	}
	c.pos++
	return true
}

// Decode copies the current document into v, which must be a *bson.M.
func (c *SliceCursor) Decode(v interface{}) error {
	target, ok := v.(*bson.M)
	if !ok {
		return fmt.Errorf("unsupported decode target %T", v)
	}
	*target = c.Docs[c.pos-1]
	return nil
}

// Err returns the configured cursor error.
func (c *SliceCursor) Err() error {
	return c.Error
}

// Close marks the cursor closed.
func (c *SliceCursor) Close(ctx context.Context) error {
	c.Closed = true
	return nil
}

// MockCollection is a mock implementation of docdb.Collection.
type MockCollection struct {
	mock.Mock
	name string
}

// NewMockCollection creates a MockCollection with the given name.
func NewMockCollection(name string) *MockCollection {
	return &MockCollection{name: name}
}

// Name returns the collection name.
func (m *MockCollection) Name() string {
	return m.name
}

// List lists documents.
func (m *MockCollection) List(ctx context.Context, opts *docdb.ListOptions) ([]models.Document, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

// Get gets a document.
func (m *MockCollection) Get(ctx context.Context, id string) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

// Set writes a document.
func (m *MockCollection) Set(ctx context.Context, id string, fields models.Fields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

// Delete deletes a document.
func (m *MockCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Update updates a document.
func (m *MockCollection) Update(ctx context.Context, id string, updates []models.FieldUpdate) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

// Where queries documents.
func (m *MockCollection) Where(ctx context.Context, field string, value models.Value) ([]models.Document, error) {
	args := m.Called(ctx, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
type MockDocDBClient struct {
	mock.Mock
	collections map[string]*MockCollection
}

// NewMockDocDBClient creates a new MockDocDBClient.
func NewMockDocDBClient() *MockDocDBClient {
	return &MockDocDBClient{
		collections: make(map[string]*MockCollection),
	}
}

// Collection returns the mock collection with the given name, creating it on first use.
func (m *MockDocDBClient) Collection(name string) docdb.Collection {
	return m.GetCollection(name)
}

// GetCollection returns the mock collection for setting expectations.
func (m *MockDocDBClient) GetCollection(name string) *MockCollection {
	coll, ok := m.collections[name]
	if !ok {
		coll = NewMockCollection(name)
		m.collections[name] = coll
	}
	return coll
}

// Ping checks the database connection.
func (m *MockDocDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the database connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
