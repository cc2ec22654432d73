package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/core/docdb/docdbtest"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/memory"
)

func TestClient_Conformance(t *testing.T) {
	docdbtest.Run(t, memory.NewClient())
}

func TestCollection_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	coll := memory.NewClient().Collection("users")
	require.NoError(t, coll.Set(ctx, "d1", models.Fields{"name": models.String("Ann")}))

	doc, err := coll.Get(ctx, "d1")
	require.NoError(t, err)
	doc.Fields["name"] = models.String("changed")

	again, err := coll.Get(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, again.Fields["name"].Equal(models.String("Ann")))
}

func TestCollection_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewClient().Collection("users").List(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
