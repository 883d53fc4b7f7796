package user

import "github.com/google/uuid"

type RegisterCommand struct {
	Username    string
	DisplayName string
}

type UserDTO struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
}

// DirectoryEntryDTO annotates a user with the caller's unread count from them.
type DirectoryEntryDTO struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	UnreadCount int64
}
