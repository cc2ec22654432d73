// Package docdb defines the document store client the facade is built on.
package docdb

import (
	"context"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// ListOptions limits a collection listing. A zero Limit lists everything.
type ListOptions struct {
	Limit int64
}

// Client defines the interface for a document store client session.
type Client interface {
	// Collection returns a reference to the named collection.
	// It performs no I/O; the collection need not exist.
	Collection(name string) Collection

	// Ping verifies the store connection.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close(ctx context.Context) error
}

// Collection defines the document primitives of one collection.
type Collection interface {
	// Name returns the collection name.
	Name() string

	// List returns documents in the collection ordered by ID.
	List(ctx context.Context, opts *ListOptions) ([]models.Document, error)

	// Get returns the document with the given ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*models.Document, error)

	// Set writes fields as the full document body, replacing any existing document.
	Set(ctx context.Context, id string, fields models.Fields) error

	// Delete removes the document. Deleting an absent document is a no-op.
	Delete(ctx context.Context, id string) error

	// Update applies field updates to an existing document as one write.
	// Returns a not found error if the document does not exist.
	Update(ctx context.Context, id string, updates []models.FieldUpdate) error

	// Where returns documents whose field equals value, ordered by ID.
	Where(ctx context.Context, field string, value models.Value) ([]models.Document, error)
}
