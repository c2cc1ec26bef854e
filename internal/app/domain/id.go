// Package domain holds shared helpers for the entity model packages.
package domain

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a fresh 128-bit random identifier rendered as 32 lowercase hex
// characters. Uniqueness is probabilistic and not otherwise enforced.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
