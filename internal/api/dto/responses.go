// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/unifiedui/docstore-service/internal/domain/models"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// CollectionExistsResponse represents the response for a collection existence check.
type CollectionExistsResponse struct {
	Collection string `json:"collection"`
	Exists     bool   `json:"exists"`
}

// CreateDocumentResponse represents the response for creating a document.
type CreateDocumentResponse struct {
	ID string `json:"id"`
}

// DocumentResponse represents a document in API responses.
type DocumentResponse struct {
	ID     string        `json:"id"`
	Fields models.Fields `json:"fields" swaggertype:"object"`
}

// GetDocumentsResponse represents the response for listing documents.
type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}

// LookupResponse represents the response for a field value lookup.
// ID is the document returned by the single-ID lookup; IDs lists every match.
type LookupResponse struct {
	ID    string   `json:"id,omitempty"`
	Found bool     `json:"found"`
	IDs   []string `json:"ids"`
}

// NewDocumentResponse converts a document into its API representation.
func NewDocumentResponse(id string, fields models.Fields) DocumentResponse {
	if fields == nil {
		fields = models.Fields{}
	}
	return DocumentResponse{ID: id, Fields: fields}
}

// NewGetDocumentsResponse converts documents into their API representation.
func NewGetDocumentsResponse(docs []models.Document) GetDocumentsResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, NewDocumentResponse(doc.ID, doc.Fields))
	}
	return GetDocumentsResponse{Documents: out, Total: len(out)}
}
