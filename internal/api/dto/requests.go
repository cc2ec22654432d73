// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/unifiedui/docstore-service/internal/domain/models"

// CreateDocumentRequest represents the request body for creating a document.
// When ID is empty a new ID is generated.
type CreateDocumentRequest struct {
	ID     string        `json:"id"`
	Fields models.Fields `json:"fields"`
}

// ReplaceDocumentRequest represents the request body for overwriting a document.
type ReplaceDocumentRequest struct {
	Fields models.Fields `json:"fields"`
}

// FieldValueRequest represents the request body for setting a single field.
// A missing value sets the field to null.
type FieldValueRequest struct {
	Value models.Value `json:"value" swaggertype:"object"`
}

// ArrayElementRequest represents the request body for array field operations.
type ArrayElementRequest struct {
	Element models.Value `json:"element" swaggertype:"object"`
}

// LookupRequest represents the request body for finding documents by field value.
type LookupRequest struct {
	Field string       `json:"field" binding:"required"`
	Value models.Value `json:"value" swaggertype:"object"`
}
