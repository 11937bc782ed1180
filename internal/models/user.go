package models

import "time"

// DefaultAvatar is assigned at registration when no image is supplied.
const DefaultAvatar = "/uploads/default-avatar.png"

// User represents a row in the users table. The password is stored and
// compared verbatim, and serialized back on login like every other column.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email     *string   `json:"email" gorm:"size:255;uniqueIndex"`
	Password  string    `json:"password" gorm:"size:255;not null"`
	UserType  string    `json:"user_type" gorm:"size:20"`
	Age       int       `json:"age"`
	Avatar    string    `json:"avatar" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	Age      int    `json:"age"`
}

// LoginRequest is the JSON body for POST /api/login. The identifier may
// arrive under any of the three keys depending on the client.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}
