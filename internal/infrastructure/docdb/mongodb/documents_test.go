package mongodb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/mongodb"
	"github.com/unifiedui/docstore-service/internal/mocks"
)

var byID = bson.D{{Key: "_id", Value: 1}}

func TestBuildUpdate_AllOperators(t *testing.T) {
	update, err := mongodb.BuildUpdate([]models.FieldUpdate{
		models.SetField("name", models.String("Ann")),
		models.DeleteField("old"),
		models.ArrayUnion("tags", models.String("x")),
		models.ArrayRemove("roles", models.String("admin"), models.Int(2)),
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"$set":      bson.M{"name": "Ann"},
		"$unset":    bson.M{"old": ""},
		"$addToSet": bson.M{"tags": bson.M{"$each": bson.A{"x"}}},
		"$pullAll":  bson.M{"roles": bson.A{"admin", int64(2)}},
	}, update)
}

func TestBuildUpdate_BatchedUnset(t *testing.T) {
	update, err := mongodb.BuildUpdate([]models.FieldUpdate{
		models.DeleteField("a"),
		models.DeleteField("b"),
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$unset": bson.M{"a": "", "b": ""}}, update)
}

func TestBuildUpdate_NestedPaths(t *testing.T) {
	update, err := mongodb.BuildUpdate([]models.FieldUpdate{
		models.SetField("address.city", models.String("Oslo")),
		models.DeleteField("address.zip"),
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"$set":   bson.M{"address.city": "Oslo"},
		"$unset": bson.M{"address.zip": ""},
	}, update)
}

func TestBuildUpdate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		updates []models.FieldUpdate
	}{
		{"empty", nil},
		{"empty field", []models.FieldUpdate{models.DeleteField("")}},
		{"id field", []models.FieldUpdate{models.SetField("_id", models.String("x"))}},
		{"nested id field", []models.FieldUpdate{models.SetField("_id.x", models.String("x"))}},
		{"operator field", []models.FieldUpdate{models.SetField("$where", models.String("x"))}},
		{"empty segment", []models.FieldUpdate{models.DeleteField("a..b")}},
		{"operator key in value", []models.FieldUpdate{
			models.SetField("a", models.Map(models.Fields{"$inc": models.Int(1)})),
		}},
		{"operator key in element", []models.FieldUpdate{
			models.ArrayUnion("a", models.Map(models.Fields{"$gt": models.Int(1)})),
		}},
		{"duplicate field", []models.FieldUpdate{models.DeleteField("a"), models.SetField("a", models.Int(1))}},
		{"unknown op", []models.FieldUpdate{{Field: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mongodb.BuildUpdate(tt.updates)
			assert.Error(t, err)
		})
	}
}

func TestDocumentCollection_Get(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	raw.On("FindOne", mock.Anything, bson.M{"_id": "d1"}).Return(&mocks.StaticSingleResult{
		Doc: bson.M{
			"_id":   "d1",
			"name":  "Ann",
			"age":   int32(41),
			"tags":  bson.A{"a", "b"},
			"meta":  bson.M{"active": true},
			"owner": bson.D{{Key: "id", Value: primitive.NewObjectID()}},
		},
	})

	coll := mongodb.NewDocumentCollection("users", raw)
	doc, err := coll.Get(context.Background(), "d1")

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, []string{"age", "meta", "name", "owner", "tags"}, doc.Fields.Keys())
	assert.True(t, doc.Fields["age"].Equal(models.Int(41)))
	assert.True(t, doc.Fields["tags"].Equal(models.Array(models.String("a"), models.String("b"))))
	assert.True(t, doc.Fields["meta"].Equal(models.Map(models.Fields{"active": models.Bool(true)})))
	assert.Equal(t, models.KindMap, doc.Fields["owner"].Kind())
	raw.AssertExpectations(t)
}

func TestDocumentCollection_Get_NotFound(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	raw.On("FindOne", mock.Anything, bson.M{"_id": "missing"}).Return(&mocks.StaticSingleResult{Error: mongo.ErrNoDocuments})

	doc, err := mongodb.NewDocumentCollection("users", raw).Get(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDocumentCollection_Get_StoreError(t *testing.T) {
	cause := errors.New("connection refused")
	raw := &mocks.MockRawCollection{}
	raw.On("FindOne", mock.Anything, mock.Anything).Return(&mocks.StaticSingleResult{Error: cause})

	_, err := mongodb.NewDocumentCollection("users", raw).Get(context.Background(), "d1")

	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
	assert.ErrorIs(t, err, cause)
}

func TestDocumentCollection_List_WithLimit(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	cursor := &mocks.SliceCursor{Docs: []bson.M{{"_id": "a"}}}
	raw.On("Find", mock.Anything, bson.M{}, &docdb.FindOptions{Limit: 1, Sort: byID}).Return(cursor, nil)

	docs, err := mongodb.NewDocumentCollection("users", raw).List(context.Background(), &docdb.ListOptions{Limit: 1})

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].ID)
	assert.Empty(t, docs[0].Fields)
	assert.True(t, cursor.Closed)
	raw.AssertExpectations(t)
}

func TestDocumentCollection_List_CursorError(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	cursor := &mocks.SliceCursor{Error: errors.New("cursor killed")}
	raw.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(cursor, nil)

	_, err := mongodb.NewDocumentCollection("users", raw).List(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestDocumentCollection_Set_Upserts(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	raw.On("ReplaceOne", mock.Anything, bson.M{"_id": "d1"}, bson.M{"_id": "d1", "name": "Ann"}, true).
		Return(&docdb.UpdateResult{UpsertedCount: 1}, nil)

	err := mongodb.NewDocumentCollection("users", raw).Set(context.Background(), "d1", models.Fields{"name": models.String("Ann")})

	assert.NoError(t, err)
	raw.AssertExpectations(t)
}

func TestDocumentCollection_Set_ReservedField(t *testing.T) {
	raw := &mocks.MockRawCollection{}

	err := mongodb.NewDocumentCollection("users", raw).Set(context.Background(), "d1", models.Fields{"_id": models.String("x")})

	assert.Error(t, err)
	raw.AssertNotCalled(t, "ReplaceOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentCollection_Update_NotMatched(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	raw.On("UpdateOne", mock.Anything, bson.M{"_id": "missing"}, mock.Anything).Return(&docdb.UpdateResult{}, nil)

	err := mongodb.NewDocumentCollection("users", raw).Update(context.Background(), "missing", []models.FieldUpdate{
		models.SetField("a", models.Int(1)),
	})

	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestDocumentCollection_Update_Matched(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	raw.On("UpdateOne", mock.Anything, bson.M{"_id": "d1"}, bson.M{"$set": bson.M{"a": int64(1)}}).
		Return(&docdb.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	err := mongodb.NewDocumentCollection("users", raw).Update(context.Background(), "d1", []models.FieldUpdate{
		models.SetField("a", models.Int(1)),
	})

	assert.NoError(t, err)
	raw.AssertExpectations(t)
}

func TestDocumentCollection_Delete(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	raw.On("DeleteOne", mock.Anything, bson.M{"_id": "d1"}).Return(&docdb.DeleteResult{DeletedCount: 0}, nil)

	err := mongodb.NewDocumentCollection("users", raw).Delete(context.Background(), "d1")

	assert.NoError(t, err)
	raw.AssertExpectations(t)
}

func TestDocumentCollection_Where(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	cursor := &mocks.SliceCursor{Docs: []bson.M{
		{"_id": "d1", "name": "Ann"},
		{"_id": "d3", "name": "Ann"},
	}}
	raw.On("Find", mock.Anything, bson.M{"name": bson.M{"$eq": "Ann"}}, &docdb.FindOptions{Sort: byID}).Return(cursor, nil)

	docs, err := mongodb.NewDocumentCollection("users", raw).Where(context.Background(), "name", models.String("Ann"))

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d3", docs[1].ID)
}

func TestDocumentCollection_ObjectIDs(t *testing.T) {
	oid := primitive.NewObjectID()
	raw := &mocks.MockRawCollection{}
	raw.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(&mocks.SliceCursor{Docs: []bson.M{{"_id": oid}}}, nil)

	docs, err := mongodb.NewDocumentCollection("legacy", raw).List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, oid.Hex(), docs[0].ID)
}

func TestDocumentCollection_Where_EqualityFilter(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	value := models.Map(models.Fields{"first": models.String("Ann")})
	raw.On("Find", mock.Anything, bson.M{"name": bson.M{"$eq": map[string]any{"first": "Ann"}}}, &docdb.FindOptions{Sort: byID}).
		Return(&mocks.SliceCursor{}, nil)

	docs, err := mongodb.NewDocumentCollection("users", raw).Where(context.Background(), "name", value)

	require.NoError(t, err)
	assert.Empty(t, docs)
	raw.AssertExpectations(t)
}

func TestDocumentCollection_Where_RejectsOperators(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value models.Value
	}{
		{"operator in value", "password", models.Map(models.Fields{"$ne": models.Null()})},
		{"nested operator in value", "profile", models.Map(models.Fields{"age": models.Map(models.Fields{"$gt": models.Int(0)})})},
		{"where clause field", "$where", models.String("sleep(5000) || true")},
		{"operator segment", "profile.$ne", models.Null()},
		{"empty segment", "profile..age", models.Int(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &mocks.MockRawCollection{}

			_, err := mongodb.NewDocumentCollection("users", raw).Where(context.Background(), tt.field, tt.value)

			require.Error(t, err)
			assert.True(t, domainerrors.IsValidationError(err))
			raw.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDocumentCollection_Where_ExactArrayMatch(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	// The server returns arrays that merely contain the value as well
	cursor := &mocks.SliceCursor{Docs: []bson.M{
		{"_id": "d1", "tags": "admin"},
		{"_id": "d2", "tags": bson.A{"admin", "ops"}},
	}}
	raw.On("Find", mock.Anything, bson.M{"tags": bson.M{"$eq": "admin"}}, mock.Anything).Return(cursor, nil)

	docs, err := mongodb.NewDocumentCollection("users", raw).Where(context.Background(), "tags", models.String("admin"))

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestDocumentCollection_Where_NestedPath(t *testing.T) {
	raw := &mocks.MockRawCollection{}
	cursor := &mocks.SliceCursor{Docs: []bson.M{
		{"_id": "d1", "address": bson.M{"city": "Oslo"}},
	}}
	raw.On("Find", mock.Anything, bson.M{"address.city": bson.M{"$eq": "Oslo"}}, mock.Anything).Return(cursor, nil)

	docs, err := mongodb.NewDocumentCollection("users", raw).Where(context.Background(), "address.city", models.String("Oslo"))

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestDocumentCollection_Set_RejectsOperatorKeys(t *testing.T) {
	raw := &mocks.MockRawCollection{}

	err := mongodb.NewDocumentCollection("users", raw).Set(context.Background(), "d1", models.Fields{
		"profile": models.Map(models.Fields{"$set": models.Int(1)}),
	})

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidationError(err))
	raw.AssertNotCalled(t, "ReplaceOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
