package models

import "time"

// User is the account and profile record returned by the backend.
// The password hash never leaves the server; the client only sends the
// plaintext password over the wire during sign-in/sign-up.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the display name used by the CLI.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
