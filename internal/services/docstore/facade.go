// Package docstore provides a facade over a document store client exposing
// collection and document CRUD, field mutation and array helpers.
//
// Every call round-trips to the store; nothing is cached. Operations that
// issue several store calls (DeleteCollection, DeleteAllDocuments,
// DeleteAllFieldsFromDocument) are not atomic, and existence checks are
// read-then-act, so concurrent callers can race. The facade imposes no
// timeouts or retries: cancellation comes from the caller's context.
package docstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// DialFunc opens a store session for a validated configuration.
type DialFunc func(ctx context.Context, cfg Config) (docdb.Client, error)

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger used for confirmation messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Facade) {
		f.logger = logger
	}
}

// WithIDGenerator replaces the generator used when a document ID is omitted.
func WithIDGenerator(generate func() string) Option {
	return func(f *Facade) {
		if generate != nil {
			f.generateID = generate
		}
	}
}

// Facade translates simple CRUD intents into calls against a docdb.Client.
// It holds no state besides the client session and is safe for concurrent
// use whenever the client is.
type Facade struct {
	client     docdb.Client
	logger     zerolog.Logger
	generateID func() string
}

// Open validates cfg and, only if it is complete, dials a store session.
func Open(ctx context.Context, cfg Config, dial DialFunc, opts ...Option) (*Facade, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dial == nil {
		return nil, fmt.Errorf("dial function is required")
	}

	client, err := dial(ctx, cfg)
	if err != nil {
		return nil, domainerrors.NewStoreError("open store session", err)
	}
	return newFacade(client, opts...), nil
}

// New validates cfg and wraps an already established client session.
func New(cfg Config, client docdb.Client, opts ...Option) (*Facade, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("document store client is required")
	}
	return newFacade(client, opts...), nil
}

func newFacade(client docdb.Client, opts ...Option) *Facade {
	f := &Facade{
		client:     client,
		logger:     log.Logger.With().Str("component", "docstore").Logger(),
		generateID: GenerateID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Client returns the held store session.
func (f *Facade) Client() docdb.Client {
	return f.client
}

// Ping verifies the store session.
func (f *Facade) Ping(ctx context.Context) error {
	if err := f.client.Ping(ctx); err != nil {
		return storeError("ping store", err)
	}
	return nil
}

// Close closes the store session.
func (f *Facade) Close(ctx context.Context) error {
	return f.client.Close(ctx)
}

// CollectionExists reports whether the collection holds at least one document.
func (f *Facade) CollectionExists(ctx context.Context, collection string) (bool, error) {
	if err := requireName("collection", collection); err != nil {
		return false, err
	}

	docs, err := f.client.Collection(collection).List(ctx, &docdb.ListOptions{Limit: 1})
	if err != nil {
		return false, storeError("list documents", err)
	}
	return len(docs) > 0, nil
}

// CreateCollection creates a collection by inserting an empty placeholder
// document with a generated ID. Fails if the collection already exists.
func (f *Facade) CreateCollection(ctx context.Context, collection string) error {
	exists, err := f.CollectionExists(ctx, collection)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.NewAlreadyExistsError("collection", collection)
	}

	if err := f.client.Collection(collection).Set(ctx, f.generateID(), models.Fields{}); err != nil {
		return storeError("create placeholder document", err)
	}

	f.logger.Info().Str("collection", collection).Msgf("Collection %s created.", collection)
	return nil
}

// DeleteCollection deletes every document currently in the collection,
// one at a time. Fails with a not found error if the collection is empty.
// Failed deletions do not stop the loop; they are reported together in a
// partial failure error naming each failed document.
func (f *Facade) DeleteCollection(ctx context.Context, collection string) error {
	if err := requireName("collection", collection); err != nil {
		return err
	}

	coll := f.client.Collection(collection)
	docs, err := coll.List(ctx, nil)
	if err != nil {
		return storeError("list documents", err)
	}
	if len(docs) == 0 {
		return domainerrors.NewNotFoundError("collection", collection)
	}

	failures := make(map[string]error)
	for _, doc := range docs {
		if err := coll.Delete(ctx, doc.ID); err != nil {
			failures[doc.ID] = storeError("delete document", err)
		}
	}

	if len(failures) > 0 {
		partial := domainerrors.NewPartialFailureError("delete collection "+collection, len(docs)-len(failures), failures)
		f.logger.Warn().
			Str("collection", collection).
			Strs("failed_documents", domainerrors.FailedIDs(failures)).
			Msgf("Collection %s partially deleted.", collection)
		return partial
	}

	f.logger.Info().Str("collection", collection).Int("documents", len(docs)).Msgf("Collection %s deleted.", collection)
	return nil
}

// DeleteAllDocuments empties an existing collection, leaving it in place
// with a fresh placeholder document.
func (f *Facade) DeleteAllDocuments(ctx context.Context, collection string) error {
	if err := f.DeleteCollection(ctx, collection); err != nil {
		return err
	}
	if err := f.CreateCollection(ctx, collection); err != nil {
		return err
	}

	f.logger.Info().Str("collection", collection).Msgf("All documents deleted from collection %s.", collection)
	return nil
}

// CreateDocument writes content as the full body of the document, replacing
// any existing one. An empty id is replaced by a generated one. Returns the ID.
func (f *Facade) CreateDocument(ctx context.Context, collection, id string, content models.Fields) (string, error) {
	if err := requireName("collection", collection); err != nil {
		return "", err
	}
	if id == "" {
		id = f.generateID()
	}
	if content == nil {
		content = models.Fields{}
	}
	if err := content.Validate(); err != nil {
		return "", domainerrors.NewValidationError("invalid document content", err.Error())
	}

	if err := f.client.Collection(collection).Set(ctx, id, content); err != nil {
		return "", storeError("set document", err)
	}

	f.logger.Info().Str("collection", collection).Str("document", id).
		Msgf("Document %s created in collection %s.", id, collection)
	return id, nil
}

// DeleteDocument deletes the document. Deleting an absent document is not an error.
func (f *Facade) DeleteDocument(ctx context.Context, collection, id string) error {
	if err := requireDocument(collection, id); err != nil {
		return err
	}

	if err := f.client.Collection(collection).Delete(ctx, id); err != nil {
		return storeError("delete document", err)
	}

	f.logger.Info().Str("collection", collection).Str("document", id).
		Msgf("Document %s deleted from collection %s.", id, collection)
	return nil
}

// AddFieldToDocument sets field to value on an existing document, keeping
// its other fields.
func (f *Facade) AddFieldToDocument(ctx context.Context, collection, id, field string, value models.Value) error {
	if err := f.update(ctx, collection, id, models.SetField(field, value)); err != nil {
		return err
	}

	f.logger.Info().Str("collection", collection).Str("document", id).Str("field", field).
		Msgf("Field %s added to document %s in collection %s.", field, id, collection)
	return nil
}

// UpdateFieldInDocument has the same effect as AddFieldToDocument.
func (f *Facade) UpdateFieldInDocument(ctx context.Context, collection, id, field string, value models.Value) error {
	if err := f.update(ctx, collection, id, models.SetField(field, value)); err != nil {
		return err
	}

	f.logger.Info().Str("collection", collection).Str("document", id).Str("field", field).
		Msgf("Field %s in document %s updated to %s in collection %s.", field, id, value, collection)
	return nil
}

// DeleteFieldFromDocument removes field from the document.
func (f *Facade) DeleteFieldFromDocument(ctx context.Context, collection, id, field string) error {
	if err := f.update(ctx, collection, id, models.DeleteField(field)); err != nil {
		return err
	}

	f.logger.Info().Str("collection", collection).Str("document", id).Str("field", field).
		Msgf("Field %s deleted from document %s in collection %s.", field, id, collection)
	return nil
}

// AddToArrayField adds element to the array field unless already present.
func (f *Facade) AddToArrayField(ctx context.Context, collection, id, field string, element models.Value) error {
	if err := f.update(ctx, collection, id, models.ArrayUnion(field, element)); err != nil {
		return err
	}

	f.logger.Info().Str("collection", collection).Str("document", id).Str("field", field).
		Msgf("Element added to array field %s in document %s in collection %s.", field, id, collection)
	return nil
}

// RemoveFromArrayField removes every occurrence of element from the array field.
// Removing an absent element is not an error.
func (f *Facade) RemoveFromArrayField(ctx context.Context, collection, id, field string, element models.Value) error {
	if err := f.update(ctx, collection, id, models.ArrayRemove(field, element)); err != nil {
		return err
	}

	f.logger.Info().Str("collection", collection).Str("document", id).Str("field", field).
		Msgf("Element removed from array field %s in document %s in collection %s.", field, id, collection)
	return nil
}

// DeleteAllFieldsFromDocument reads the document and removes all of its
// fields in one batched update. An absent document is not an error.
func (f *Facade) DeleteAllFieldsFromDocument(ctx context.Context, collection, id string) error {
	if err := requireDocument(collection, id); err != nil {
		return err
	}

	coll := f.client.Collection(collection)
	doc, err := coll.Get(ctx, id)
	if err != nil {
		return storeError("get document", err)
	}
	if doc == nil {
		f.logger.Info().Str("collection", collection).Str("document", id).
			Msgf("Document %s does not exist in collection %s.", id, collection)
		return nil
	}

	keys := doc.Fields.Keys()
	if len(keys) > 0 {
		updates := make([]models.FieldUpdate, 0, len(keys))
		for _, key := range keys {
			updates = append(updates, models.DeleteField(key))
		}
		if err := coll.Update(ctx, id, updates); err != nil {
			return storeError("update document", err)
		}
	}

	f.logger.Info().Str("collection", collection).Str("document", id).Int("fields", len(keys)).
		Msgf("All fields deleted from document %s in collection %s.", id, collection)
	return nil
}

// GetDocumentIDByFieldValue returns the ID of a document whose field equals
// value. When several documents match, the last one in ID order is returned
// and a warning is logged; use GetDocumentIDsByFieldValue to see them all.
// found is false when nothing matches.
func (f *Facade) GetDocumentIDByFieldValue(ctx context.Context, collection, field string, value models.Value) (id string, found bool, err error) {
	ids, err := f.GetDocumentIDsByFieldValue(ctx, collection, field, value)
	if err != nil {
		return "", false, err
	}
	if len(ids) == 0 {
		return "", false, nil
	}
	if len(ids) > 1 {
		f.logger.Warn().Str("collection", collection).Str("field", field).Strs("documents", ids).
			Msg("field value is not unique; returning the last matching document")
	}
	return ids[len(ids)-1], true, nil
}

// GetDocumentIDsByFieldValue returns the IDs of every document whose field
// equals value, in ID order.
func (f *Facade) GetDocumentIDsByFieldValue(ctx context.Context, collection, field string, value models.Value) ([]string, error) {
	if err := requireName("collection", collection); err != nil {
		return nil, err
	}
	if err := requireField(field); err != nil {
		return nil, err
	}
	if err := requireValue(value); err != nil {
		return nil, err
	}

	docs, err := f.client.Collection(collection).Where(ctx, field, value)
	if err != nil {
		return nil, storeError("query documents", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// GetDocument returns the document body, or nil if the document does not exist.
func (f *Facade) GetDocument(ctx context.Context, collection, id string) (models.Fields, error) {
	if err := requireDocument(collection, id); err != nil {
		return nil, err
	}

	doc, err := f.client.Collection(collection).Get(ctx, id)
	if err != nil {
		return nil, storeError("get document", err)
	}
	if doc == nil {
		f.logger.Info().Str("collection", collection).Str("document", id).
			Msgf("Document %s does not exist in collection %s.", id, collection)
		return nil, nil
	}
	return doc.Fields, nil
}

// GetAllDocuments returns every document in the collection with its ID.
func (f *Facade) GetAllDocuments(ctx context.Context, collection string) ([]models.Document, error) {
	if err := requireName("collection", collection); err != nil {
		return nil, err
	}

	docs, err := f.client.Collection(collection).List(ctx, nil)
	if err != nil {
		return nil, storeError("list documents", err)
	}
	return docs, nil
}

func (f *Facade) update(ctx context.Context, collection, id string, update models.FieldUpdate) error {
	if err := requireDocument(collection, id); err != nil {
		return err
	}
	if err := requireField(update.Field); err != nil {
		return err
	}
	if err := requireValue(update.Value); err != nil {
		return err
	}
	for _, e := range update.Elements {
		if err := requireValue(e); err != nil {
			return err
		}
	}

	if err := f.client.Collection(collection).Update(ctx, id, []models.FieldUpdate{update}); err != nil {
		return storeError("update document", err)
	}
	return nil
}

func requireName(kind, name string) error {
	if name == "" {
		return domainerrors.NewValidationError(kind+" name is required", "")
	}
	return nil
}

// requireField checks a dotted field path such as "address.city".
func requireField(field string) error {
	if field == "" {
		return domainerrors.NewValidationError("field name is required", "")
	}
	if err := models.ValidateFieldPath(field); err != nil {
		return domainerrors.NewValidationError("invalid field path", err.Error())
	}
	return nil
}

func requireValue(value models.Value) error {
	if err := value.Validate(); err != nil {
		return domainerrors.NewValidationError("invalid field value", err.Error())
	}
	return nil
}

func requireDocument(collection, id string) error {
	if err := requireName("collection", collection); err != nil {
		return err
	}
	if id == "" {
		return domainerrors.NewValidationError("document ID is required", collection)
	}
	return nil
}

// storeError passes domain errors from the store through unchanged and
// wraps anything else as a store error.
func storeError(operation string, err error) error {
	if domainerrors.IsDomainError(err) {
		return err
	}
	return domainerrors.NewStoreError(operation, err)
}
