// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"context"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// DocumentStore is the set of facade operations exposed over HTTP.
// It is implemented by *docstore.Facade.
type DocumentStore interface {
	CollectionExists(ctx context.Context, collection string) (bool, error)
	CreateCollection(ctx context.Context, collection string) error
	DeleteCollection(ctx context.Context, collection string) error
	DeleteAllDocuments(ctx context.Context, collection string) error

	CreateDocument(ctx context.Context, collection, id string, content models.Fields) (string, error)
	DeleteDocument(ctx context.Context, collection, id string) error
	GetDocument(ctx context.Context, collection, id string) (models.Fields, error)
	GetAllDocuments(ctx context.Context, collection string) ([]models.Document, error)

	AddFieldToDocument(ctx context.Context, collection, id, field string, value models.Value) error
	UpdateFieldInDocument(ctx context.Context, collection, id, field string, value models.Value) error
	DeleteFieldFromDocument(ctx context.Context, collection, id, field string) error
	DeleteAllFieldsFromDocument(ctx context.Context, collection, id string) error
	AddToArrayField(ctx context.Context, collection, id, field string, element models.Value) error
	RemoveFromArrayField(ctx context.Context, collection, id, field string, element models.Value) error

	GetDocumentIDByFieldValue(ctx context.Context, collection, field string, value models.Value) (string, bool, error)
	GetDocumentIDsByFieldValue(ctx context.Context, collection, field string, value models.Value) ([]string, error)
}
