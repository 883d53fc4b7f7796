package keys

import "github.com/google/uuid"

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

type SignedPreKeyUpload struct {
	KeyID     uint32
	PublicKey []byte
	Signature []byte
}

type OneTimePreKeyUpload struct {
	KeyID     uint32
	PublicKey []byte
}

type UploadBundleCommand struct {
	IdentityKey    []byte
	SignedPreKey   SignedPreKeyUpload
	OneTimePreKeys []OneTimePreKeyUpload // can be empty
}

type PreKeyBundleDTO struct {
	UserID                uuid.UUID
	IdentityKey           []byte
	SignedPreKeyID        uint32
	SignedPreKey          []byte
	SignedPreKeySignature []byte
	OneTimePreKeyID       *uint32
	OneTimePreKey         []byte
}
