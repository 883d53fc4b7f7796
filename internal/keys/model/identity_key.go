package models

import (
	"time"

	"github.com/google/uuid"
)

type IdentityKey struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	// Opaque public key blob. The server stores it and hands it out in
	// bundles; it never verifies or parses it.
	PublicKey []byte `bun:",notnull"`

	RegisteredAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
