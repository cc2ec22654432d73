// Package docdbtest provides a conformance suite for docdb.Client implementations.
package docdbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
)

// Run exercises every docdb.Collection primitive against client.
// Each subtest uses its own collection so the client may be shared.
func Run(t *testing.T, client docdb.Client) {
	t.Helper()
	ctx := context.Background()

	t.Run("List empty", func(t *testing.T) {
		docs, err := client.Collection("empty").List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("Set and Get", func(t *testing.T) {
		coll := client.Collection("set_get")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{
			"title": models.String("hello"),
			"count": models.Int(42),
			"tags":  models.Array(models.String("a")),
			"meta":  models.Map(models.Fields{"ok": models.Bool(true)}),
		}))

		doc, err := coll.Get(ctx, "d1")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "d1", doc.ID)
		assert.True(t, doc.Fields["title"].Equal(models.String("hello")))
		assert.True(t, doc.Fields["count"].Equal(models.Int(42)))
		assert.True(t, doc.Fields["tags"].Equal(models.Array(models.String("a"))))
		assert.True(t, doc.Fields["meta"].Equal(models.Map(models.Fields{"ok": models.Bool(true)})))
	})

	t.Run("Get missing", func(t *testing.T) {
		doc, err := client.Collection("set_get").Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("Set overwrites", func(t *testing.T) {
		coll := client.Collection("overwrite")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{"a": models.Int(1), "b": models.Int(2)}))
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{"c": models.Int(3)}))

		doc, err := coll.Get(ctx, "d1")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, []string{"c"}, doc.Fields.Keys())
	})

	t.Run("Set empty body", func(t *testing.T) {
		coll := client.Collection("placeholder")
		require.NoError(t, coll.Set(ctx, "p", models.Fields{}))

		docs, err := coll.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Empty(t, docs[0].Fields)
	})

	t.Run("List ordered and limited", func(t *testing.T) {
		coll := client.Collection("listing")
		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, coll.Set(ctx, id, models.Fields{"id": models.String(id)}))
		}

		docs, err := coll.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "a", docs[0].ID)
		assert.Equal(t, "c", docs[2].ID)

		limited, err := coll.List(ctx, &docdb.ListOptions{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		coll := client.Collection("deleting")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{"a": models.Int(1)}))
		require.NoError(t, coll.Delete(ctx, "d1"))

		doc, err := coll.Get(ctx, "d1")
		require.NoError(t, err)
		assert.Nil(t, doc)

		// absent document is a no-op
		assert.NoError(t, coll.Delete(ctx, "d1"))
		assert.NoError(t, client.Collection("never_created").Delete(ctx, "x"))
	})

	t.Run("Update", func(t *testing.T) {
		coll := client.Collection("updating")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{
			"keep": models.Int(1),
			"drop": models.Int(2),
			"tags": models.Array(models.String("x")),
		}))

		require.NoError(t, coll.Update(ctx, "d1", []models.FieldUpdate{
			models.SetField("added", models.String("v")),
			models.DeleteField("drop"),
			models.ArrayUnion("tags", models.String("x"), models.String("y")),
		}))
		require.NoError(t, coll.Update(ctx, "d1", []models.FieldUpdate{
			models.ArrayRemove("tags", models.String("x"), models.String("absent")),
		}))

		doc, err := coll.Get(ctx, "d1")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, []string{"added", "keep", "tags"}, doc.Fields.Keys())
		assert.True(t, doc.Fields["tags"].Equal(models.Array(models.String("y"))))
	})

	t.Run("Update missing document", func(t *testing.T) {
		err := client.Collection("updating").Update(ctx, "missing", []models.FieldUpdate{
			models.SetField("a", models.Int(1)),
		})
		require.Error(t, err)
		assert.True(t, domainerrors.IsNotFound(err))
	})

	t.Run("Where", func(t *testing.T) {
		coll := client.Collection("querying")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{"name": models.String("Ann")}))
		require.NoError(t, coll.Set(ctx, "d2", models.Fields{"name": models.String("Bob")}))
		require.NoError(t, coll.Set(ctx, "d3", models.Fields{"name": models.String("Ann")}))

		docs, err := coll.Where(ctx, "name", models.String("Ann"))
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "d1", docs[0].ID)
		assert.Equal(t, "d3", docs[1].ID)

		none, err := coll.Where(ctx, "name", models.String("Cy"))
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Update nested paths", func(t *testing.T) {
		coll := client.Collection("nested_update")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{
			"address": models.Map(models.Fields{"city": models.String("Oslo"), "zip": models.String("0150")}),
		}))

		require.NoError(t, coll.Update(ctx, "d1", []models.FieldUpdate{
			models.SetField("address.city", models.String("Bergen")),
			models.DeleteField("address.zip"),
			models.SetField("meta.owner", models.String("ann")),
		}))

		doc, err := coll.Get(ctx, "d1")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.True(t, doc.Fields.Equal(models.Fields{
			"address": models.Map(models.Fields{"city": models.String("Bergen")}),
			"meta":    models.Map(models.Fields{"owner": models.String("ann")}),
		}))
	})

	t.Run("Where nested path and exact arrays", func(t *testing.T) {
		coll := client.Collection("nested_where")
		require.NoError(t, coll.Set(ctx, "d1", models.Fields{
			"address": models.Map(models.Fields{"city": models.String("Oslo")}),
			"tags":    models.Array(models.String("admin"), models.String("ops")),
		}))
		require.NoError(t, coll.Set(ctx, "d2", models.Fields{
			"address": models.Map(models.Fields{"city": models.String("Bergen")}),
			"tags":    models.String("admin"),
		}))

		docs, err := coll.Where(ctx, "address.city", models.String("Oslo"))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "d1", docs[0].ID)

		docs, err = coll.Where(ctx, "tags", models.String("admin"))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "d2", docs[0].ID)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, client.Ping(ctx))
	})
}
