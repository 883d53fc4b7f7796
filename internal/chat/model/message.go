package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an opaque encrypted envelope. Ciphertext and nonce are never
// inspected server-side. EphemeralPublicKey and UsedOPKID ride only on the
// first envelope of a freshly established session (X3DH handshake material).
type Message struct {
	ID          int64     `bun:",pk,autoincrement"`
	SenderID    uuid.UUID `bun:",notnull,type:uuid"`
	RecipientID uuid.UUID `bun:",notnull,type:uuid"`

	Ciphertext []byte `bun:",notnull"`
	Nonce      []byte `bun:",notnull"`

	EphemeralPublicKey []byte  `bun:",nullzero"`
	UsedOPKID          *uint32 `bun:"used_opk_id"`

	Timestamp time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	IsRead    bool      `bun:",notnull,default:false"`
}
