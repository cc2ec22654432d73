package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/config"
	"github.com/unifiedui/docstore-service/internal/domain/models"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/memory"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
	"github.com/unifiedui/docstore-service/internal/testutils"
)

func TestCreateVault(t *testing.T) {
	v, err := createVault(config.VaultConfig{Type: "none"})
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = createVault(config.VaultConfig{Type: "dotenv"})
	require.NoError(t, err)
	assert.Equal(t, "dotenv", v.Scheme())

	_, err = createVault(config.VaultConfig{Type: "azure"})
	assert.Error(t, err)
}

func TestCreateVault_SecretsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.env")
	require.NoError(t, os.WriteFile(path, []byte("DOCSTORE_MAIN_TEST_KEY=from-file\n"), 0o600))

	v, err := createVault(config.VaultConfig{Type: "dotenv", SecretsFile: path})
	require.NoError(t, err)

	secret, err := v.GetSecret(context.Background(), "dotenv://DOCSTORE_MAIN_TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, "from-file", secret)

	_, err = createVault(config.VaultConfig{Type: "dotenv", SecretsFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, err)
}

func TestStoreConfig_MapsEveryKey(t *testing.T) {
	cfg := storeConfig(config.StoreConfig{
		APIKey:            "key",
		AuthDomain:        "example.firebaseapp.com",
		DatabaseURL:       "memory://",
		ProjectID:         "example",
		StorageBucket:     "example.appspot.com",
		MessagingSenderID: "1234",
		AppID:             "1:1234:web:abcd",
		MeasurementID:     "G-XYZ",
	})

	assert.Equal(t, testutils.TestStoreConfig(), cfg)
}

func TestCreateDocDBClient_Memory(t *testing.T) {
	client, err := createDocDBClient(context.Background(), config.DocDBConfig{Type: "memory"}, config.RedisConfig{}, testutils.TestStoreConfig())

	require.NoError(t, err)
	assert.IsType(t, &memory.Client{}, client)
}

func TestCreateDocDBClient_Redis(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	store := testutils.TestStoreConfig()
	store.DatabaseURL = "redis://" + server.Addr()

	f, err := docstore.Open(ctx, store, newDialer(config.DocDBConfig{Type: "redis"}, config.RedisConfig{MaxTxRetries: 3}))
	require.NoError(t, err)
	defer f.Close(ctx)

	_, err = f.CreateDocument(ctx, "users", "u1", models.Fields{"name": models.String("Ann")})
	require.NoError(t, err)

	// The project ID namespaces the keys when no prefix is configured
	assert.True(t, server.Exists("example:collection:users"))
}

func TestCreateDocDBClient_Unsupported(t *testing.T) {
	_, err := createDocDBClient(context.Background(), config.DocDBConfig{Type: "sqlite"}, config.RedisConfig{}, testutils.TestStoreConfig())

	assert.Error(t, err)
}

func TestSetupRouter_ServesAPIAndDocs(t *testing.T) {
	f, _ := testutils.NewMemoryFacade(t)
	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}

	router := setupRouter(cfg, f, nil, testutils.NopLogger())

	w := testutils.PerformRequest(router, "GET", "/api/v1/docstore/live", nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)

	w = testutils.PerformRequest(router, "GET", "/docs/doc.json", nil, nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.Contains(t, w.Body.String(), "/api/v1/docstore/collections/{collection}")
}
