package models

import "time"

// Reaction is a like or dislike by one user on one post. The composite
// unique index guarantees at most one row per (post, user) pair.
type Reaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}
