// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/domain/errors"
)

// DocumentsHandler handles document and field endpoints.
type DocumentsHandler struct {
	store DocumentStore
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(store DocumentStore) *DocumentsHandler {
	return &DocumentsHandler{
		store: store,
	}
}

// ListDocuments handles GET /collections/{collection}/documents
// @Summary List documents
// @Description Returns every document in the collection with its ID
// @Tags Documents
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} dto.GetDocumentsResponse
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents [get]
func (h *DocumentsHandler) ListDocuments(c *gin.Context) {
	docs, err := h.store.GetAllDocuments(c.Request.Context(), c.Param("collection"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGetDocumentsResponse(docs))
}

// CreateDocument handles POST /collections/{collection}/documents
// @Summary Create a document
// @Description Writes the document, replacing any existing one. An ID is generated when none is given.
// @Tags Documents
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param request body dto.CreateDocumentRequest true "Document"
// @Success 201 {object} dto.CreateDocumentResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents [post]
func (h *DocumentsHandler) CreateDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	id, err := h.store.CreateDocument(c.Request.Context(), c.Param("collection"), req.ID, req.Fields)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateDocumentResponse{ID: id})
}

// GetDocument handles GET /collections/{collection}/documents/{documentId}
// @Summary Get a document
// @Tags Documents
// @Produce json
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId} [get]
func (h *DocumentsHandler) GetDocument(c *gin.Context) {
	collection := c.Param("collection")
	documentID := c.Param("documentId")

	fields, err := h.store.GetDocument(c.Request.Context(), collection, documentID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if fields == nil {
		middleware.HandleError(c, errors.NewNotFoundError("document", collection+"/"+documentID))
		return
	}

	c.JSON(http.StatusOK, dto.NewDocumentResponse(documentID, fields))
}

// ReplaceDocument handles PUT /collections/{collection}/documents/{documentId}
// @Summary Replace a document
// @Description Writes the full document body, creating the document if absent
// @Tags Documents
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Param request body dto.ReplaceDocumentRequest true "Document body"
// @Success 200 {object} dto.CreateDocumentResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId} [put]
func (h *DocumentsHandler) ReplaceDocument(c *gin.Context) {
	var req dto.ReplaceDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	id, err := h.store.CreateDocument(c.Request.Context(), c.Param("collection"), c.Param("documentId"), req.Fields)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateDocumentResponse{ID: id})
}

// DeleteDocument handles DELETE /collections/{collection}/documents/{documentId}
// @Summary Delete a document
// @Description Deleting an absent document succeeds
// @Tags Documents
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Success 204 "Document deleted"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId} [delete]
func (h *DocumentsHandler) DeleteDocument(c *gin.Context) {
	if err := h.store.DeleteDocument(c.Request.Context(), c.Param("collection"), c.Param("documentId")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllFields handles DELETE /collections/{collection}/documents/{documentId}/fields
// @Summary Delete all fields
// @Description Removes every field, leaving an empty document. An absent document is not an error.
// @Tags Fields
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Success 204 "Fields deleted"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId}/fields [delete]
func (h *DocumentsHandler) DeleteAllFields(c *gin.Context) {
	if err := h.store.DeleteAllFieldsFromDocument(c.Request.Context(), c.Param("collection"), c.Param("documentId")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddField handles POST /collections/{collection}/documents/{documentId}/fields/{field}
// @Summary Add a field
// @Tags Fields
// @Accept json
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Param field path string true "Field name"
// @Param request body dto.FieldValueRequest true "Field value"
// @Success 204 "Field added"
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId}/fields/{field} [post]
func (h *DocumentsHandler) AddField(c *gin.Context) {
	var req dto.FieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.store.AddFieldToDocument(c.Request.Context(), c.Param("collection"), c.Param("documentId"), c.Param("field"), req.Value); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateField handles PUT /collections/{collection}/documents/{documentId}/fields/{field}
// @Summary Update a field
// @Tags Fields
// @Accept json
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Param field path string true "Field name"
// @Param request body dto.FieldValueRequest true "Field value"
// @Success 204 "Field updated"
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId}/fields/{field} [put]
func (h *DocumentsHandler) UpdateField(c *gin.Context) {
	var req dto.FieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.store.UpdateFieldInDocument(c.Request.Context(), c.Param("collection"), c.Param("documentId"), c.Param("field"), req.Value); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteField handles DELETE /collections/{collection}/documents/{documentId}/fields/{field}
// @Summary Delete a field
// @Tags Fields
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Param field path string true "Field name"
// @Success 204 "Field deleted"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId}/fields/{field} [delete]
func (h *DocumentsHandler) DeleteField(c *gin.Context) {
	if err := h.store.DeleteFieldFromDocument(c.Request.Context(), c.Param("collection"), c.Param("documentId"), c.Param("field")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ArrayUnion handles POST /collections/{collection}/documents/{documentId}/fields/{field}/union
// @Summary Add an element to an array field
// @Description The element is added only if not already present
// @Tags Fields
// @Accept json
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Param field path string true "Field name"
// @Param request body dto.ArrayElementRequest true "Element"
// @Success 204 "Element added"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId}/fields/{field}/union [post]
func (h *DocumentsHandler) ArrayUnion(c *gin.Context) {
	var req dto.ArrayElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.store.AddToArrayField(c.Request.Context(), c.Param("collection"), c.Param("documentId"), c.Param("field"), req.Element); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ArrayRemove handles POST /collections/{collection}/documents/{documentId}/fields/{field}/remove
// @Summary Remove an element from an array field
// @Description Every occurrence of the element is removed
// @Tags Fields
// @Accept json
// @Param collection path string true "Collection name"
// @Param documentId path string true "Document ID"
// @Param field path string true "Field name"
// @Param request body dto.ArrayElementRequest true "Element"
// @Success 204 "Element removed"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents/{documentId}/fields/{field}/remove [post]
func (h *DocumentsHandler) ArrayRemove(c *gin.Context) {
	var req dto.ArrayElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.store.RemoveFromArrayField(c.Request.Context(), c.Param("collection"), c.Param("documentId"), c.Param("field"), req.Element); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
