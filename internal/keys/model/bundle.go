package models

import "github.com/google/uuid"

// PreKeyBundle is the transient composition returned to a caller starting an
// X3DH handshake. OneTimePreKey fields are nil/zero when the pool was empty.
type PreKeyBundle struct {
	UserID          uuid.UUID
	IdentityKey     []byte
	SignedPreKeyID  uint32
	SignedPreKey    []byte
	SignedPreKeySig []byte
	OneTimePreKeyID *uint32
	OneTimePreKey   []byte
}
