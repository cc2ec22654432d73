package docstore_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/memory"
	"github.com/unifiedui/docstore-service/internal/mocks"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

func validConfig() docstore.Config {
	return docstore.Config{
		APIKey:            "key",
		AuthDomain:        "example.firebaseapp.com",
		DatabaseURL:       "memory://",
		ProjectID:         "example",
		StorageBucket:     "example.appspot.com",
		MessagingSenderID: "1234",
		AppID:             "1:1234:web:abcd",
		MeasurementID:     "G-XYZ",
	}
}

type testFacade struct {
	*docstore.Facade
	logs *bytes.Buffer
}

func newMemoryFacade(t *testing.T) testFacade {
	t.Helper()
	logs := &bytes.Buffer{}
	f, err := docstore.New(validConfig(), memory.NewClient(), docstore.WithLogger(zerolog.New(logs)))
	require.NoError(t, err)
	return testFacade{Facade: f, logs: logs}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("_gen%02d", n)
	}
}

func TestOpen_ValidConfig_Dials(t *testing.T) {
	client := memory.NewClient()
	var dialed docstore.Config

	f, err := docstore.Open(context.Background(), validConfig(), func(_ context.Context, cfg docstore.Config) (docdb.Client, error) {
		dialed = cfg
		return client, nil
	})

	require.NoError(t, err)
	assert.Same(t, client, f.Client())
	assert.Equal(t, validConfig(), dialed)
}

func TestOpen_MissingKey_NeverDials(t *testing.T) {
	cfg := validConfig()
	cfg.ProjectID = ""
	dialed := false

	_, err := docstore.Open(context.Background(), cfg, func(context.Context, docstore.Config) (docdb.Client, error) {
		dialed = true
		return memory.NewClient(), nil
	})

	require.Error(t, err)
	assert.True(t, domainerrors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "projectId")
	assert.False(t, dialed)
}

func TestOpen_DialFailure(t *testing.T) {
	cause := errors.New("no reachable servers")

	_, err := docstore.Open(context.Background(), validConfig(), func(context.Context, docstore.Config) (docdb.Client, error) {
		return nil, cause
	})

	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
	assert.ErrorIs(t, err, cause)
}

func TestNew_NilClient(t *testing.T) {
	_, err := docstore.New(validConfig(), nil)
	assert.Error(t, err)
}

func TestFacade_CollectionLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)

	exists, err := f.CollectionExists(ctx, "users")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, f.CreateCollection(ctx, "users"))
	assert.Contains(t, f.logs.String(), "Collection users created.")

	exists, err = f.CollectionExists(ctx, "users")
	require.NoError(t, err)
	assert.True(t, exists)

	docs, err := f.GetAllDocuments(ctx, "users")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Regexp(t, `^_[0-9a-f]{32}$`, docs[0].ID)
	assert.Empty(t, docs[0].Fields)

	err = f.CreateCollection(ctx, "users")
	require.Error(t, err)
	assert.True(t, domainerrors.IsAlreadyExists(err))

	docs, err = f.GetAllDocuments(ctx, "users")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, f.DeleteCollection(ctx, "users"))
	assert.Contains(t, f.logs.String(), "Collection users deleted.")

	exists, err = f.CollectionExists(ctx, "users")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFacade_DeleteCollection_NotFound(t *testing.T) {
	f := newMemoryFacade(t)

	err := f.DeleteCollection(context.Background(), "ghosts")

	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestFacade_DeleteCollection_RemovesEveryDocument(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	for i := 0; i < 5; i++ {
		_, err := f.CreateDocument(ctx, "orders", fmt.Sprintf("o%d", i), models.Fields{"n": models.Int(int64(i))})
		require.NoError(t, err)
	}

	require.NoError(t, f.DeleteCollection(ctx, "orders"))

	docs, err := f.GetAllDocuments(ctx, "orders")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFacade_DeleteAllDocuments(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{"name": models.String("Ann")})
	require.NoError(t, err)
	_, err = f.CreateDocument(ctx, "users", "u2", models.Fields{"name": models.String("Bob")})
	require.NoError(t, err)

	require.NoError(t, f.DeleteAllDocuments(ctx, "users"))

	docs, err := f.GetAllDocuments(ctx, "users")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Empty(t, docs[0].Fields)
	assert.NotEqual(t, "u1", docs[0].ID)
}

func TestFacade_UsersScenario(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)

	id, err := f.CreateDocument(ctx, "users", "u1", models.Fields{"name": models.String("Ann"), "age": models.Int(30)})
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Contains(t, f.logs.String(), "Document u1 created in collection users.")

	require.NoError(t, f.UpdateFieldInDocument(ctx, "users", "u1", "age", models.Int(31)))
	require.NoError(t, f.AddToArrayField(ctx, "users", "u1", "tags", models.String("admin")))
	require.NoError(t, f.AddToArrayField(ctx, "users", "u1", "tags", models.String("admin")))

	doc, err := f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.True(t, doc.Equal(models.Fields{
		"name": models.String("Ann"),
		"age":  models.Int(31),
		"tags": models.Array(models.String("admin")),
	}))

	foundID, found, err := f.GetDocumentIDByFieldValue(ctx, "users", "name", models.String("Ann"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u1", foundID)

	require.NoError(t, f.RemoveFromArrayField(ctx, "users", "u1", "tags", models.String("admin")))
	require.NoError(t, f.DeleteFieldFromDocument(ctx, "users", "u1", "age"))

	doc, err = f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.True(t, doc.Equal(models.Fields{
		"name": models.String("Ann"),
		"tags": models.Array(),
	}))

	require.NoError(t, f.DeleteAllFieldsFromDocument(ctx, "users", "u1"))

	doc, err = f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Empty(t, doc)

	require.NoError(t, f.DeleteDocument(ctx, "users", "u1"))

	doc, err = f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFacade_CreateDocument_GeneratesID(t *testing.T) {
	ctx := context.Background()
	logs := &bytes.Buffer{}
	f, err := docstore.New(validConfig(), memory.NewClient(),
		docstore.WithLogger(zerolog.New(logs)),
		docstore.WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)

	id, err := f.CreateDocument(ctx, "notes", "", models.Fields{"text": models.String("hi")})

	require.NoError(t, err)
	assert.Equal(t, "_gen01", id)
	doc, err := f.GetDocument(ctx, "notes", id)
	require.NoError(t, err)
	assert.True(t, doc["text"].Equal(models.String("hi")))
}

func TestFacade_CreateDocument_Overwrites(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{"name": models.String("Ann"), "age": models.Int(30)})
	require.NoError(t, err)

	_, err = f.CreateDocument(ctx, "users", "u1", models.Fields{"city": models.String("Oslo")})
	require.NoError(t, err)

	doc, err := f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"city"}, doc.Keys())
}

func TestFacade_AddField_EqualsUpdateField(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	for _, id := range []string{"a", "b"} {
		_, err := f.CreateDocument(ctx, "users", id, models.Fields{"name": models.String("Ann")})
		require.NoError(t, err)
	}

	require.NoError(t, f.AddFieldToDocument(ctx, "users", "a", "role", models.String("admin")))
	require.NoError(t, f.UpdateFieldInDocument(ctx, "users", "b", "role", models.String("admin")))

	a, err := f.GetDocument(ctx, "users", "a")
	require.NoError(t, err)
	b, err := f.GetDocument(ctx, "users", "b")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestFacade_FieldMutations_MissingDocument(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"add field", func() error { return f.AddFieldToDocument(ctx, "users", "nope", "a", models.Int(1)) }},
		{"update field", func() error { return f.UpdateFieldInDocument(ctx, "users", "nope", "a", models.Int(1)) }},
		{"delete field", func() error { return f.DeleteFieldFromDocument(ctx, "users", "nope", "a") }},
		{"array union", func() error { return f.AddToArrayField(ctx, "users", "nope", "a", models.Int(1)) }},
		{"array remove", func() error { return f.RemoveFromArrayField(ctx, "users", "nope", "a", models.Int(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, domainerrors.IsNotFound(err))
		})
	}

	doc, err := f.GetDocument(ctx, "users", "nope")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFacade_DeleteDocument_Absent(t *testing.T) {
	f := newMemoryFacade(t)

	assert.NoError(t, f.DeleteDocument(context.Background(), "users", "never"))
}

func TestFacade_DeleteAllFieldsFromDocument_Absent(t *testing.T) {
	f := newMemoryFacade(t)

	err := f.DeleteAllFieldsFromDocument(context.Background(), "users", "never")

	assert.NoError(t, err)
	assert.Contains(t, f.logs.String(), "Document never does not exist in collection users.")
}

func TestFacade_DeleteAllFieldsFromDocument_EmptyDocument(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDocDBClient()
	coll := client.GetCollection("users")
	coll.On("Get", mock.Anything, "u1").Return(&models.Document{ID: "u1", Fields: models.Fields{}}, nil)
	f, err := docstore.New(validConfig(), client, docstore.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, f.DeleteAllFieldsFromDocument(ctx, "users", "u1"))

	coll.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestFacade_DeleteAllFieldsFromDocument_SingleBatchedUpdate(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDocDBClient()
	coll := client.GetCollection("users")
	coll.On("Get", mock.Anything, "u1").Return(&models.Document{ID: "u1", Fields: models.Fields{
		"b": models.Int(1),
		"a": models.String("x"),
	}}, nil)
	coll.On("Update", mock.Anything, "u1", []models.FieldUpdate{
		models.DeleteField("a"),
		models.DeleteField("b"),
	}).Return(nil).Once()
	f, err := docstore.New(validConfig(), client, docstore.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	require.NoError(t, f.DeleteAllFieldsFromDocument(ctx, "users", "u1"))

	coll.AssertExpectations(t)
}

func TestFacade_ArrayOps(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{
		"tags": models.Array(models.String("a"), models.String("b"), models.String("a")),
		"name": models.String("Ann"),
	})
	require.NoError(t, err)

	require.NoError(t, f.RemoveFromArrayField(ctx, "users", "u1", "tags", models.String("a")))
	require.NoError(t, f.RemoveFromArrayField(ctx, "users", "u1", "tags", models.String("zzz")))
	require.NoError(t, f.AddToArrayField(ctx, "users", "u1", "fresh", models.Int(7)))

	doc, err := f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.True(t, doc["tags"].Equal(models.Array(models.String("b"))))
	assert.True(t, doc["fresh"].Equal(models.Array(models.Int(7))))

	err = f.AddToArrayField(ctx, "users", "u1", "name", models.String("x"))
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestFacade_GetDocumentIDByFieldValue(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	for _, id := range []string{"u1", "u2", "u3"} {
		name := "Ann"
		if id == "u2" {
			name = "Bob"
		}
		_, err := f.CreateDocument(ctx, "users", id, models.Fields{"name": models.String(name)})
		require.NoError(t, err)
	}

	t.Run("no match", func(t *testing.T) {
		id, found, err := f.GetDocumentIDByFieldValue(ctx, "users", "name", models.String("Eve"))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, id)
	})

	t.Run("single match", func(t *testing.T) {
		id, found, err := f.GetDocumentIDByFieldValue(ctx, "users", "name", models.String("Bob"))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "u2", id)
	})

	t.Run("several matches returns last", func(t *testing.T) {
		id, found, err := f.GetDocumentIDByFieldValue(ctx, "users", "name", models.String("Ann"))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "u3", id)
		assert.Contains(t, f.logs.String(), "field value is not unique")
	})

	t.Run("all matches", func(t *testing.T) {
		ids, err := f.GetDocumentIDsByFieldValue(ctx, "users", "name", models.String("Ann"))
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u3"}, ids)
	})
}

func TestFacade_LookupIsLiteralEquality(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{"password": models.String("secret")})
	require.NoError(t, err)
	_, err = f.CreateDocument(ctx, "users", "u2", models.Fields{"tags": models.Array(models.String("admin"))})
	require.NoError(t, err)

	// An operator-shaped value never reaches the store
	_, err = f.GetDocumentIDsByFieldValue(ctx, "users", "password", models.Map(models.Fields{"$ne": models.Null()}))
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidationError(err))

	// Array fields match only the whole array
	ids, err := f.GetDocumentIDsByFieldValue(ctx, "users", "tags", models.String("admin"))
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = f.GetDocumentIDsByFieldValue(ctx, "users", "tags", models.Array(models.String("admin")))
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, ids)
}

func TestFacade_NestedFieldPaths(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)
	_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{
		"address": models.Map(models.Fields{"city": models.String("Oslo")}),
	})
	require.NoError(t, err)

	require.NoError(t, f.UpdateFieldInDocument(ctx, "users", "u1", "address.city", models.String("Bergen")))
	require.NoError(t, f.AddToArrayField(ctx, "users", "u1", "address.tags", models.String("home")))

	doc, err := f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	assert.True(t, doc.Equal(models.Fields{
		"address": models.Map(models.Fields{
			"city": models.String("Bergen"),
			"tags": models.Array(models.String("home")),
		}),
	}))

	id, found, err := f.GetDocumentIDByFieldValue(ctx, "users", "address.city", models.String("Bergen"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u1", id)

	require.NoError(t, f.DeleteFieldFromDocument(ctx, "users", "u1", "address.city"))
	doc, err = f.GetDocument(ctx, "users", "u1")
	require.NoError(t, err)
	_, ok := doc.Lookup("address.city")
	assert.False(t, ok)
}

func TestFacade_GetAllDocuments_Empty(t *testing.T) {
	f := newMemoryFacade(t)

	docs, err := f.GetAllDocuments(context.Background(), "nothing")

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFacade_ValidatesArguments(t *testing.T) {
	ctx := context.Background()
	f := newMemoryFacade(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"collection exists", func() error { _, err := f.CollectionExists(ctx, ""); return err }},
		{"create collection", func() error { return f.CreateCollection(ctx, "") }},
		{"delete collection", func() error { return f.DeleteCollection(ctx, "") }},
		{"create document", func() error { _, err := f.CreateDocument(ctx, "", "id", nil); return err }},
		{"delete document", func() error { return f.DeleteDocument(ctx, "users", "") }},
		{"add field", func() error { return f.AddFieldToDocument(ctx, "users", "u1", "", models.Null()) }},
		{"get document", func() error { _, err := f.GetDocument(ctx, "", "u1"); return err }},
		{"lookup field", func() error {
			_, _, err := f.GetDocumentIDByFieldValue(ctx, "users", "", models.Null())
			return err
		}},
		{"lookup operator field", func() error {
			_, err := f.GetDocumentIDsByFieldValue(ctx, "users", "$where", models.String("sleep(5000) || true"))
			return err
		}},
		{"lookup operator value", func() error {
			_, err := f.GetDocumentIDsByFieldValue(ctx, "users", "password", models.Map(models.Fields{"$ne": models.Null()}))
			return err
		}},
		{"update empty segment", func() error { return f.UpdateFieldInDocument(ctx, "users", "u1", "a..b", models.Int(1)) }},
		{"update operator value", func() error {
			return f.UpdateFieldInDocument(ctx, "users", "u1", "a", models.Map(models.Fields{"$inc": models.Int(1)}))
		}},
		{"array operator element", func() error {
			return f.AddToArrayField(ctx, "users", "u1", "tags", models.Map(models.Fields{"$gt": models.Int(0)}))
		}},
		{"create dotted key", func() error {
			_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{"a.b": models.Int(1)})
			return err
		}},
		{"create operator key", func() error {
			_, err := f.CreateDocument(ctx, "users", "u1", models.Fields{"$set": models.Int(1)})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, domainerrors.IsValidationError(err))
		})
	}
}

func TestFacade_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("permission denied")
	client := mocks.NewMockDocDBClient()
	coll := client.GetCollection("users")
	coll.On("List", mock.Anything, mock.Anything).Return(nil, cause)
	coll.On("Get", mock.Anything, mock.Anything).Return(nil, cause)
	coll.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(cause)
	f, err := docstore.New(validConfig(), client, docstore.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = f.CollectionExists(ctx, "users")
	assert.True(t, domainerrors.IsStoreError(err))
	assert.ErrorIs(t, err, cause)

	_, err = f.GetDocument(ctx, "users", "u1")
	assert.True(t, domainerrors.IsStoreError(err))

	_, err = f.CreateDocument(ctx, "users", "u1", models.Fields{})
	assert.True(t, domainerrors.IsStoreError(err))
	assert.Contains(t, err.Error(), "permission denied")

	_, err = f.GetAllDocuments(ctx, "users")
	assert.ErrorIs(t, err, cause)
}

func TestFacade_DeleteCollection_PartialFailure(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("deadline exceeded")
	client := mocks.NewMockDocDBClient()
	coll := client.GetCollection("users")
	coll.On("List", mock.Anything, (*docdb.ListOptions)(nil)).Return([]models.Document{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}, nil)
	coll.On("Delete", mock.Anything, "a").Return(nil)
	coll.On("Delete", mock.Anything, "b").Return(cause)
	coll.On("Delete", mock.Anything, "c").Return(nil)
	f, err := docstore.New(validConfig(), client, docstore.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	err = f.DeleteCollection(ctx, "users")

	require.Error(t, err)
	assert.True(t, domainerrors.IsPartialFailure(err))
	assert.ErrorIs(t, err, cause)
	var partial *domainerrors.PartialFailureError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, []string{"b"}, domainerrors.FailedIDs(partial.Failures))
	coll.AssertNumberOfCalls(t, "Delete", 3)
}

func TestFacade_PingAndClose(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockDocDBClient()
	client.On("Ping", mock.Anything).Return(errors.New("down")).Once()
	client.On("Close", mock.Anything).Return(nil).Once()
	f, err := docstore.New(validConfig(), client)
	require.NoError(t, err)

	err = f.Ping(ctx)
	assert.True(t, domainerrors.IsStoreError(err))
	assert.NoError(t, f.Close(ctx))
	client.AssertExpectations(t)
}
