package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// Collection implements docdb.Collection over a single Redis hash.
type Collection struct {
	client       *redis.Client
	name         string
	key          string
	maxTxRetries int
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// List returns documents ordered by ID. With a limit only the first
// documents by ID are fetched and decoded.
func (c *Collection) List(ctx context.Context, opts *docdb.ListOptions) ([]models.Document, error) {
	if opts != nil && opts.Limit > 0 {
		return c.listLimited(ctx, opts.Limit)
	}

	entries, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, domainerrors.NewStoreError("list documents", err)
	}
	return decodeEntries(entries, nil)
}

func (c *Collection) listLimited(ctx context.Context, limit int64) ([]models.Document, error) {
	ids, err := c.client.HKeys(ctx, c.key).Result()
	if err != nil {
		return nil, domainerrors.NewStoreError("list documents", err)
	}
	sort.Strings(ids)
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	if len(ids) == 0 {
		return []models.Document{}, nil
	}

	values, err := c.client.HMGet(ctx, c.key, ids...).Result()
	if err != nil {
		return nil, domainerrors.NewStoreError("list documents", err)
	}

	docs := make([]models.Document, 0, len(ids))
	for i, id := range ids {
		raw, ok := values[i].(string)
		if !ok {
			// deleted between HKEYS and HMGET
			continue
		}
		fields, err := decodeFields(id, []byte(raw))
		if err != nil {
			return nil, err
		}
		docs = append(docs, models.Document{ID: id, Fields: fields})
	}
	return docs, nil
}

// Get returns the document or nil if absent.
func (c *Collection) Get(ctx context.Context, id string) (*models.Document, error) {
	raw, err := c.client.HGet(ctx, c.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewStoreError("get document", err)
	}

	fields, err := decodeFields(id, raw)
	if err != nil {
		return nil, err
	}
	return &models.Document{ID: id, Fields: fields}, nil
}

// Set writes the full document body.
func (c *Collection) Set(ctx context.Context, id string, fields models.Fields) error {
	data, err := encodeFields(fields)
	if err != nil {
		return err
	}
	if err := c.client.HSet(ctx, c.key, id, data).Err(); err != nil {
		return domainerrors.NewStoreError("set document", err)
	}
	return nil
}

// Delete removes the document if present.
func (c *Collection) Delete(ctx context.Context, id string) error {
	if err := c.client.HDel(ctx, c.key, id).Err(); err != nil {
		return domainerrors.NewStoreError("delete document", err)
	}
	return nil
}

// Update applies field updates with an optimistic WATCH/MULTI transaction,
// retrying when another writer touches the collection in between.
func (c *Collection) Update(ctx context.Context, id string, updates []models.FieldUpdate) error {
	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, c.key, id).Bytes()
		if errors.Is(err, redis.Nil) {
			return domainerrors.NewNotFoundError("document", c.name+"/"+id)
		}
		if err != nil {
			return domainerrors.NewStoreError("read document", err)
		}

		current, err := decodeFields(id, raw)
		if err != nil {
			return err
		}
		next, err := models.ApplyUpdates(current, updates)
		if err != nil {
			return domainerrors.NewStoreError("update document", err)
		}
		data, err := encodeFields(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, c.key, id, data)
			return nil
		})
		return err
	}

	for i := 0; i < c.maxTxRetries; i++ {
		err := c.client.Watch(ctx, txf, c.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !domainerrors.IsDomainError(err) {
			return domainerrors.NewStoreError("update document", err)
		}
		return err
	}
	return domainerrors.NewStoreError("update document", fmt.Errorf("transaction retries exhausted after %d attempts", c.maxTxRetries))
}

// Where scans the collection and returns documents whose field, a dotted
// path, equals value.
func (c *Collection) Where(ctx context.Context, field string, value models.Value) ([]models.Document, error) {
	entries, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, domainerrors.NewStoreError("query documents", err)
	}

	return decodeEntries(entries, func(fields models.Fields) bool {
		v, ok := fields.Lookup(field)
		return ok && v.Equal(value)
	})
}

func decodeEntries(entries map[string]string, match func(models.Fields) bool) ([]models.Document, error) {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		fields, err := decodeFields(id, []byte(entries[id]))
		if err != nil {
			return nil, err
		}
		if match != nil && !match(fields) {
			continue
		}
		docs = append(docs, models.Document{ID: id, Fields: fields})
	}
	return docs, nil
}

func encodeFields(fields models.Fields) ([]byte, error) {
	if fields == nil {
		fields = models.Fields{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, domainerrors.NewStoreError("encode document", err)
	}
	return data, nil
}

func decodeFields(id string, raw []byte) (models.Fields, error) {
	var fields models.Fields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, domainerrors.NewStoreError("decode document "+id, err)
	}
	if fields == nil {
		fields = models.Fields{}
	}
	return fields, nil
}
