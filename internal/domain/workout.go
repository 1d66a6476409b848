package domain

import "time"

// Workout is a single logged training session. Type, Date and Exercises are
// client-supplied free-form strings; Exercises typically carries serialized
// structured data but the server treats it as opaque.
type Workout struct {
	ID        int64
	Username  string
	Type      string
	Date      string
	Exercises string
	CreatedAt time.Time
}
