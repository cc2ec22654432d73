package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
	"github.com/unifiedui/docstore-service/internal/infrastructure/vault/dotenv"
	"github.com/unifiedui/docstore-service/internal/services/docstore"
)

func TestConfig_Validate_Complete(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_MissingKey(t *testing.T) {
	tests := []struct {
		key   string
		clear func(*docstore.Config)
	}{
		{"apiKey", func(c *docstore.Config) { c.APIKey = "" }},
		{"authDomain", func(c *docstore.Config) { c.AuthDomain = "" }},
		{"databaseURL", func(c *docstore.Config) { c.DatabaseURL = "" }},
		{"projectId", func(c *docstore.Config) { c.ProjectID = "" }},
		{"storageBucket", func(c *docstore.Config) { c.StorageBucket = "" }},
		{"messagingSenderId", func(c *docstore.Config) { c.MessagingSenderID = "" }},
		{"appId", func(c *docstore.Config) { c.AppID = "" }},
		{"measurementId", func(c *docstore.Config) { c.MeasurementID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := validConfig()
			tt.clear(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.True(t, domainerrors.IsConfigurationError(err))
			domainErr, ok := domainerrors.GetDomainError(err)
			require.True(t, ok)
			assert.Equal(t, tt.key, domainErr.Details)
		})
	}
}

func TestConfig_Validate_ReportsFirstMissingKey(t *testing.T) {
	err := docstore.Config{}.Validate()

	domainErr, ok := domainerrors.GetDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "apiKey", domainErr.Details)
}

func TestConfig_ResolveSecrets(t *testing.T) {
	v := dotenv.NewVault()
	ref := v.StoreSecret("DOCSTORE_TEST_API_KEY", "resolved-key")
	cfg := validConfig()
	cfg.APIKey = ref

	resolved, err := cfg.ResolveSecrets(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, "resolved-key", resolved.APIKey)
	assert.Equal(t, cfg.ProjectID, resolved.ProjectID)
	assert.Equal(t, ref, cfg.APIKey)
}

func TestConfig_ResolveSecrets_Missing(t *testing.T) {
	cfg := validConfig()
	cfg.AppID = "dotenv://DOCSTORE_TEST_NOT_SET"

	_, err := cfg.ResolveSecrets(context.Background(), dotenv.NewVault())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "appId")
}

func TestConfig_ResolveSecrets_NilVault(t *testing.T) {
	cfg := validConfig()

	resolved, err := cfg.ResolveSecrets(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, cfg, resolved)
}

func TestGenerateID(t *testing.T) {
	first := docstore.GenerateID()
	second := docstore.GenerateID()

	assert.Regexp(t, `^_[0-9a-f]{32}$`, first)
	assert.NotEqual(t, first, second)
}
