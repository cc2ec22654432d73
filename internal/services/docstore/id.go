package docstore

import (
	"strings"

	"github.com/google/uuid"
)

// IDPrefix marks document IDs generated by the facade.
const IDPrefix = "_"

// GenerateID returns a new document ID: IDPrefix followed by the 32 hex
// digits of a random (version 4) UUID.
func GenerateID() string {
	return IDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
