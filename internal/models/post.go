package models

import "time"

// Post is a user-authored post. Like and dislike counts are never stored on
// the row; they are derived from reactions at read time.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Empty fields are ignored, only non-empty fields are applied.
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content string `json:"content,omitempty"`
}

// PostResponse is a post annotated with its author, derived reaction counts
// and the requesting user's own reaction (nil when they have not reacted)
type PostResponse struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Author        UserResponse `json:"author"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	LikesCount    int64        `json:"likes_count"`
	DislikesCount int64        `json:"dislikes_count"`
	UserReaction  *bool        `json:"user_reaction"`
}
