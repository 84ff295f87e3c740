package model

import "time"

// User represents a registered account allowed to run predictions.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
