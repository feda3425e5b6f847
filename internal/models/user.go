package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex"`
	Email             string    `json:"email" gorm:"uniqueIndex"`
	Password          string    `json:"-"` // Store hashed password, ignore for JSON serialization
	Name              string    `json:"name"`
	Surname           string    `json:"surname"`
	Bio               string    `json:"bio"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	VerificationCode  string    `json:"-" gorm:"index"`
	Verified          bool      `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=50"`
	Surname  string `json:"surname" validate:"required,max=50"`
}

// LoginRequest defines the request body for local authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for partial profile updates.
// Absent or empty fields leave the stored value untouched.
type UpdateUserRequest struct {
	Name              string `json:"name,omitempty" validate:"omitempty,max=50"`
	Surname           string `json:"surname,omitempty" validate:"omitempty,max=50"`
	Bio               string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	Password          string `json:"password,omitempty"`
}

// UserResponse is the public view of a user, annotated with follow counts and
// whether the requesting user follows them
type UserResponse struct {
	ID                uint   `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	Surname           string `json:"surname"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profile_picture_url"`
	FollowersCount    int64  `json:"followers_count"`
	FollowingCount    int64  `json:"following_count"`
	IsFollowing       bool   `json:"is_following"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
