// Package dotenv provides a dotenv-based vault implementation for development.
package dotenv

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Scheme is the URI scheme of dotenv secret references.
const Scheme = "dotenv"

// Vault implements the vault.Vault interface using environment variables.
// This is primarily for local development and testing.
type Vault struct {
	// secrets holds secrets loaded from a file or stored explicitly
	secrets map[string]string
	mu      sync.RWMutex
}

// NewVault creates a new DotEnv vault instance.
func NewVault() *Vault {
	return &Vault{
		secrets: make(map[string]string),
	}
}

// NewVaultFromFile creates a vault seeded with the entries of a .env file.
// The file is parsed without touching the process environment.
func NewVaultFromFile(path string) (*Vault, error) {
	entries, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	v := NewVault()
	for k, val := range entries {
		v.secrets[k] = val
	}
	return v, nil
}

// Scheme returns "dotenv".
func (v *Vault) Scheme() string {
	return Scheme
}

// StoreSecret stores a secret in memory.
// Returns a URI in the format "dotenv://{key}".
func (v *Vault) StoreSecret(key string, value string) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.secrets[key] = value
	return fmt.Sprintf("%s://%s", Scheme, key)
}

// GetSecret retrieves a secret from environment variables or the in-memory store.
func (v *Vault) GetSecret(ctx context.Context, uri string) (string, error) {
	key := strings.TrimPrefix(uri, Scheme+"://")

	// First check environment variables
	if value := os.Getenv(key); value != "" {
		return value, nil
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if value, ok := v.secrets[key]; ok && value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not found: %s", key)
}

// Ping checks if the vault is available (always returns nil for dotenv).
func (v *Vault) Ping(ctx context.Context) error {
	return nil
}

// Close closes the vault (no-op for dotenv).
func (v *Vault) Close() error {
	return nil
}
