package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePreKey rows form a per-user pool. A claimed key is deleted in the
// transaction that reads it, so a given key can reach at most one caller.
type OneTimePreKey struct {
	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	KeyID     uint32 `bun:",notnull"`
	PublicKey []byte `bun:",notnull"`

	UploadedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
