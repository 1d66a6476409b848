package domain

import "time"

// User represents a registered account. Salt and PasswordHash are hex-encoded
// and set exactly once at registration.
type User struct {
	Username     string
	Salt         string
	PasswordHash string
	CreatedAt    time.Time
}
