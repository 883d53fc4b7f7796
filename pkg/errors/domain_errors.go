package errors

var (
	// Key material
	ErrBundleNotFound       = NotFound("no key bundle registered for user")
	ErrIdentityKeyEmpty     = InvalidArg("identity key must not be empty")
	ErrSignedPreKeyEmpty    = InvalidArg("signed prekey public key must not be empty")
	ErrDuplicateOneTimeKey  = InvalidArg("duplicate one-time prekey ID")
	ErrInvalidOneTimePreKey = InvalidArg("invalid one-time prekey")

	// Users
	ErrUserNotFound    = NotFound("user not found")
	ErrUsernameTaken   = AlreadyExists("username is already taken")
	ErrInvalidUsername = InvalidArg("username must not be empty")

	// Messaging
	ErrMissingRecipient  = InvalidArg("missing recipient")
	ErrMissingCiphertext = InvalidArg("missing ciphertext or nonce")

	// Transport
	ErrConnectionClosed = Unavailable("connection closed")
)

func ErrStorageFailed(cause error) error {
	return Storage("storage operation failed", cause)
}
