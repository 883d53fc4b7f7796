package models

import (
	"time"

	"github.com/google/uuid"
)

type SignedPreKey struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	KeyID     uint32 `bun:",notnull"` // client-chosen, e.g. incremental
	PublicKey []byte `bun:",notnull"`
	Signature []byte `bun:",notnull"` // opaque; verification is the client's job

	UploadedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
