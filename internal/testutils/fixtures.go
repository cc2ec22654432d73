package testutils

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
	"github.com/unifiedui/docstore-service/internal/infrastructure/docdb/memory"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

// Test constants
const (
	TestCollection = "users"
	TestDocumentID = "u1"
	TestAPIKey     = "test-api-key"
)

// TestStoreConfig returns a complete store configuration.
func TestStoreConfig() docstore.Config {
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

// NewTestFacade creates a silent facade over client.
func NewTestFacade(t *testing.T, client docdb.Client) *docstore.Facade {
	t.Helper()
	f, err := docstore.New(TestStoreConfig(), client, docstore.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return f
}

// NewMemoryFacade creates a silent facade over a fresh in-memory store.
func NewMemoryFacade(t *testing.T) (*docstore.Facade, *memory.Client) {
	t.Helper()
	client := memory.NewClient()
	return NewTestFacade(t, client), client
}

// NopLogger returns a logger that discards everything.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
