package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle
	Username string `bun:",unique,notnull"`

	// Name = display name shown in chats (can be changed freely)
	Name string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// DirectoryEntry is a user row annotated with how many unread envelopes that
// user has sent the caller.
type DirectoryEntry struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       uuid.UUID `bun:"id"`
	Username string    `bun:"username"`
	Name     string    `bun:"name"`

	UnreadCount int64 `bun:"unread_count,scanonly"`
}
