package model

import "time"

type User struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized to clients
	CreatedAt time.Time `json:"createdAt"`
}
