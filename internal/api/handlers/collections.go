// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docstore-service/internal/api/dto"
	"github.com/unifiedui/docstore-service/internal/api/middleware"
	"github.com/unifiedui/docstore-service/internal/domain/errors"
)

// CollectionsHandler handles collection-level endpoints.
type CollectionsHandler struct {
	store DocumentStore
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(store DocumentStore) *CollectionsHandler {
	return &CollectionsHandler{
		store: store,
	}
}

// CollectionExists handles GET /collections/{collection}
// @Summary Check collection existence
// @Description A collection exists while it holds at least one document
// @Tags Collections
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} dto.CollectionExistsResponse
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection} [get]
func (h *CollectionsHandler) CollectionExists(c *gin.Context) {
	collection := c.Param("collection")

	exists, err := h.store.CollectionExists(c.Request.Context(), collection)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CollectionExistsResponse{
		Collection: collection,
		Exists:     exists,
	})
}

// CreateCollection handles POST /collections/{collection}
// @Summary Create a collection
// @Description Creates the collection by writing an empty placeholder document
// @Tags Collections
// @Produce json
// @Param collection path string true "Collection name"
// @Success 201 {object} dto.CollectionExistsResponse
// @Failure 409 {object} dto.ErrorResponse "Collection already exists"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection} [post]
func (h *CollectionsHandler) CreateCollection(c *gin.Context) {
	collection := c.Param("collection")

	if err := h.store.CreateCollection(c.Request.Context(), collection); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CollectionExistsResponse{
		Collection: collection,
		Exists:     true,
	})
}

// DeleteCollection handles DELETE /collections/{collection}
// @Summary Delete a collection
// @Description Deletes every document in the collection
// @Tags Collections
// @Param collection path string true "Collection name"
// @Success 204 "Collection deleted"
// @Failure 207 {object} dto.ErrorResponse "Some documents could not be deleted"
// @Failure 404 {object} dto.ErrorResponse "Collection not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection} [delete]
func (h *CollectionsHandler) DeleteCollection(c *gin.Context) {
	if err := h.store.DeleteCollection(c.Request.Context(), c.Param("collection")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllDocuments handles DELETE /collections/{collection}/documents
// @Summary Delete all documents
// @Description Empties the collection, leaving a fresh placeholder document
// @Tags Collections
// @Param collection path string true "Collection name"
// @Success 204 "Documents deleted"
// @Failure 404 {object} dto.ErrorResponse "Collection not found"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/documents [delete]
func (h *CollectionsHandler) DeleteAllDocuments(c *gin.Context) {
	if err := h.store.DeleteAllDocuments(c.Request.Context(), c.Param("collection")); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Lookup handles POST /collections/{collection}/lookup
// @Summary Find documents by field value
// @Description Returns the ID of a document whose field equals the value. With all=true every matching ID is listed.
// @Tags Collections
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param all query bool false "List every matching ID"
// @Param request body dto.LookupRequest true "Field and value"
// @Success 200 {object} dto.LookupResponse
// @Failure 400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure 502 {object} dto.ErrorResponse "Store error"
// @Router /api/v1/docstore/collections/{collection}/lookup [post]
func (h *CollectionsHandler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()
	collection := c.Param("collection")

	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if c.Query("all") == "true" {
		ids, err := h.store.GetDocumentIDsByFieldValue(ctx, collection, req.Field, req.Value)
		if err != nil {
			middleware.HandleError(c, err)
			return
		}
		resp := dto.LookupResponse{Found: len(ids) > 0, IDs: ids}
		if resp.Found {
			resp.ID = ids[len(ids)-1]
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	id, found, err := h.store.GetDocumentIDByFieldValue(ctx, collection, req.Field, req.Value)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp := dto.LookupResponse{ID: id, Found: found, IDs: []string{}}
	if found {
		resp.IDs = []string{id}
	}
	c.JSON(http.StatusOK, resp)
}
