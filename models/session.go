package models

import "time"

// Session binds an opaque bearer token to the email and role captured at login.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
