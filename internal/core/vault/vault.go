// Package vault defines the vault interface for secrets management.
package vault

import (
	"context"
	"fmt"
	"strings"
)

// Vault defines the interface for reading secrets referenced from configuration.
type Vault interface {
	// Scheme returns the URI scheme of references this vault resolves, e.g. "dotenv".
	Scheme() string

	// GetSecret retrieves a secret from the vault by URI.
	// Returns the secret value or an error if not found.
	GetSecret(ctx context.Context, uri string) (string, error)

	// Ping checks if the vault connection is alive.
	Ping(ctx context.Context) error

	// Close closes the vault connection.
	Close() error
}

// IsReference reports whether value is a secret reference for scheme.
func IsReference(scheme, value string) bool {
	return strings.HasPrefix(value, scheme+"://")
}

// Resolve returns the secret referenced by value, or value itself when it
// is not a reference for v's scheme. A nil vault resolves nothing.
func Resolve(ctx context.Context, v Vault, value string) (string, error) {
	if v == nil || !IsReference(v.Scheme(), value) {
		return value, nil
	}

	secret, err := v.GetSecret(ctx, value)
	if err != nil {
		return "", fmt.Errorf("failed to resolve secret %s: %w", value, err)
	}
	return secret, nil
}
