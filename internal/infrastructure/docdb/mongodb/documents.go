package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// IDField is the MongoDB primary key field holding the document ID.
const IDField = "_id"

// DocumentCollection implements the docdb.Collection interface for MongoDB.
type DocumentCollection struct {
	name       string
	collection docdb.RawCollection
}

// NewDocumentCollection creates a document collection over a raw collection.
func NewDocumentCollection(name string, collection docdb.RawCollection) *DocumentCollection {
	return &DocumentCollection{
		name:       name,
		collection: collection,
	}
}

// Name returns the collection name.
func (c *DocumentCollection) Name() string {
	return c.name
}

// List returns documents ordered by ID.
func (c *DocumentCollection) List(ctx context.Context, opts *docdb.ListOptions) ([]models.Document, error) {
	findOpts := &docdb.FindOptions{Sort: bson.D{{Key: IDField, Value: 1}}}
	if opts != nil && opts.Limit > 0 {
		findOpts.Limit = opts.Limit
	}
	return c.find(ctx, "list documents", bson.M{}, findOpts)
}

// Get returns the document or nil if absent.
func (c *DocumentCollection) Get(ctx context.Context, id string) (*models.Document, error) {
	result := c.collection.FindOne(ctx, bson.M{IDField: id})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domainerrors.NewStoreError("get document", err)
	}

	var raw bson.M
	if err := result.Decode(&raw); err != nil {
		return nil, domainerrors.NewStoreError("decode document", err)
	}

	doc, err := toDocument(raw)
	if err != nil {
		return nil, domainerrors.NewStoreError("decode document", err)
	}
	return &doc, nil
}

// Set replaces the document body, inserting it when absent.
func (c *DocumentCollection) Set(ctx context.Context, id string, fields models.Fields) error {
	if err := fields.Validate(); err != nil {
		return domainerrors.NewValidationError("invalid document", err.Error())
	}

	body := bson.M{IDField: id}
	for k, v := range fields {
		if k == IDField {
			return domainerrors.NewStoreError("set document", fmt.Errorf("field %q is reserved", IDField))
		}
		body[k] = v.Interface()
	}

	if _, err := c.collection.ReplaceOne(ctx, bson.M{IDField: id}, body, true); err != nil {
		return domainerrors.NewStoreError("set document", err)
	}
	return nil
}

// Delete removes the document if present.
func (c *DocumentCollection) Delete(ctx context.Context, id string) error {
	if _, err := c.collection.DeleteOne(ctx, bson.M{IDField: id}); err != nil {
		return domainerrors.NewStoreError("delete document", err)
	}
	return nil
}

// Update applies field updates in a single UpdateOne call.
func (c *DocumentCollection) Update(ctx context.Context, id string, updates []models.FieldUpdate) error {
	update, err := BuildUpdate(updates)
	if err != nil {
		return domainerrors.NewStoreError("update document", err)
	}

	result, err := c.collection.UpdateOne(ctx, bson.M{IDField: id}, update)
	if err != nil {
		return domainerrors.NewStoreError("update document", err)
	}
	if result.MatchedCount == 0 {
		return domainerrors.NewNotFoundError("document", c.name+"/"+id)
	}
	return nil
}

// Where returns documents whose field, a dotted path, equals value, ordered by ID.
func (c *DocumentCollection) Where(ctx context.Context, field string, value models.Value) ([]models.Document, error) {
	if err := models.ValidateFieldPath(field); err != nil {
		return nil, domainerrors.NewValidationError("invalid field path", err.Error())
	}
	if err := value.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("invalid field value", err.Error())
	}

	filter := bson.M{field: bson.M{"$eq": value.Interface()}}
	docs, err := c.find(ctx, "query documents", filter, &docdb.FindOptions{Sort: bson.D{{Key: IDField, Value: 1}}})
	if err != nil {
		return nil, err
	}

	// $eq also matches arrays holding value as an element.
	matched := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if v, ok := doc.Fields.Lookup(field); ok && v.Equal(value) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func (c *DocumentCollection) find(ctx context.Context, operation string, filter interface{}, opts *docdb.FindOptions) ([]models.Document, error) {
	cursor, err := c.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewStoreError(operation, err)
	}
	defer cursor.Close(ctx)

	docs := make([]models.Document, 0)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, domainerrors.NewStoreError("decode document", err)
		}
		doc, err := toDocument(raw)
		if err != nil {
			return nil, domainerrors.NewStoreError("decode document", err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewStoreError(operation, err)
	}

	return docs, nil
}

// BuildUpdate translates field updates into a MongoDB update document.
// Dotted field paths address nested maps. Each field may appear in at most
// one update.
func BuildUpdate(updates []models.FieldUpdate) (bson.M, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no field updates given")
	}

	set := bson.M{}
	unset := bson.M{}
	addToSet := bson.M{}
	pullAll := bson.M{}
	seen := make(map[string]struct{}, len(updates))

	for _, u := range updates {
		if err := models.ValidateFieldPath(u.Field); err != nil {
			return nil, err
		}
		if u.Field == IDField || strings.HasPrefix(u.Field, IDField+models.PathSeparator) {
			return nil, fmt.Errorf("field %q cannot be updated", IDField)
		}
		if err := u.Value.Validate(); err != nil {
			return nil, fmt.Errorf("field %q: %w", u.Field, err)
		}
		for _, e := range u.Elements {
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("field %q: %w", u.Field, err)
			}
		}
		if _, dup := seen[u.Field]; dup {
			return nil, fmt.Errorf("field %q updated more than once", u.Field)
		}
		seen[u.Field] = struct{}{}

		switch u.Op {
		case models.OpSet:
			set[u.Field] = u.Value.Interface()
		case models.OpDelete:
			unset[u.Field] = ""
		case models.OpArrayUnion:
			addToSet[u.Field] = bson.M{"$each": elementsOf(u.Elements)}
		case models.OpArrayRemove:
			pullAll[u.Field] = elementsOf(u.Elements)
		default:
			return nil, fmt.Errorf("unsupported update %s on field %q", u.Op, u.Field)
		}
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	if len(addToSet) > 0 {
		update["$addToSet"] = addToSet
	}
	if len(pullAll) > 0 {
		update["$pullAll"] = pullAll
	}
	return update, nil
}

func elementsOf(values []models.Value) bson.A {
	out := make(bson.A, len(values))
	for i, v := range values {
		out[i] = v.Interface()
	}
	return out
}

// toDocument converts a decoded MongoDB document into a models.Document.
func toDocument(raw bson.M) (models.Document, error) {
	id, err := idString(raw[IDField])
	if err != nil {
		return models.Document{}, err
	}

	fields := make(models.Fields, len(raw))
	for k, v := range raw {
		if k == IDField {
			continue
		}
		value, err := fromBSON(v)
		if err != nil {
			return models.Document{}, fmt.Errorf("field %q: %w", k, err)
		}
		fields[k] = value
	}

	return models.Document{ID: id, Fields: fields}, nil
}

func idString(raw interface{}) (string, error) {
	switch id := raw.(type) {
	case string:
		return id, nil
	case primitive.ObjectID:
		return id.Hex(), nil
	case nil:
		return "", fmt.Errorf("document has no %s", IDField)
	default:
		return fmt.Sprint(id), nil
	}
}

// fromBSON converts driver-decoded values into models.Value.
func fromBSON(raw interface{}) (models.Value, error) {
	switch v := raw.(type) {
	case primitive.M:
		fields := make(models.Fields, len(v))
		for k, e := range v {
			ev, err := fromBSON(e)
			if err != nil {
				return models.Value{}, fmt.Errorf("%s: %w", k, err)
			}
			fields[k] = ev
		}
		return models.Map(fields), nil
	case primitive.D:
		fields := make(models.Fields, len(v))
		for _, e := range v {
			ev, err := fromBSON(e.Value)
			if err != nil {
				return models.Value{}, fmt.Errorf("%s: %w", e.Key, err)
			}
			fields[e.Key] = ev
		}
		return models.Map(fields), nil
	case primitive.A:
		elems := make([]models.Value, len(v))
		for i, e := range v {
			ev, err := fromBSON(e)
			if err != nil {
				return models.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = ev
		}
		return models.Array(elems...), nil
	case primitive.ObjectID:
		return models.String(v.Hex()), nil
	case primitive.DateTime:
		return models.String(v.Time().UTC().Format(time.RFC3339Nano)), nil
	case primitive.Decimal128:
		return models.String(v.String()), nil
	case primitive.Null, primitive.Undefined:
		return models.Null(), nil
	default:
		return models.FromAny(raw)
	}
}
