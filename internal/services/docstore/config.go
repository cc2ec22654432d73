package docstore

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/unifiedui/docstore-service/internal/core/vault"
	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
)

// Config holds the credentials and endpoints required to open a store session.
// Every key is required and must be non-empty. Keys are checked in
// declaration order and the first missing one is reported.
type Config struct {
	APIKey            string `key:"apiKey" validate:"required"`
	AuthDomain        string `key:"authDomain" validate:"required"`
	DatabaseURL       string `key:"databaseURL" validate:"required"`
	ProjectID         string `key:"projectId" validate:"required"`
	StorageBucket     string `key:"storageBucket" validate:"required"`
	MessagingSenderID string `key:"messagingSenderId" validate:"required"`
	AppID             string `key:"appId" validate:"required"`
	MeasurementID     string `key:"measurementId" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("key"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate checks that every required key is present. It performs no I/O.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.NewConfigurationError(fieldErrs[0].Field())
	}
	return domainerrors.NewInternalError("failed to validate configuration", err)
}

// ResolveSecrets returns a copy of c with every secret reference resolved
// through v. Plain values are kept as-is.
func (c Config) ResolveSecrets(ctx context.Context, v vault.Vault) (Config, error) {
	resolved := c
	for _, field := range resolved.values() {
		value, err := vault.Resolve(ctx, v, *field.value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", field.key, err)
		}
		*field.value = value
	}
	return resolved, nil
}

type configValue struct {
	key   string
	value *string
}

func (c *Config) values() []configValue {
	return []configValue{
		{"apiKey", &c.APIKey},
		{"authDomain", &c.AuthDomain},
		{"databaseURL", &c.DatabaseURL},
		{"projectId", &c.ProjectID},
		{"storageBucket", &c.StorageBucket},
		{"messagingSenderId", &c.MessagingSenderID},
		{"appId", &c.AppID},
		{"measurementId", &c.MeasurementID},
	}
}
