package models

import "time"

// DefaultName is substituted when a user registered without a display name.
const DefaultName = "User"

// User is a row in the users table. PasswordHash never leaves the server.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DirectoryUser is the wire shape of a user in the directory listing.
// CreatedAt is pre-formatted ("Jan 2, 2006") and IsReal marks provenance:
// true for rows from the store, false for demo entries merged in by clients.
type DirectoryUser struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	IsReal    bool   `json:"isReal"`
}

// CreatedAtLayout is the localized short date format used by the directory.
const CreatedAtLayout = "Jan 2, 2006"

// Directory converts a stored user to its listing shape.
func (u User) Directory() DirectoryUser {
	name := u.Name
	if name == "" {
		name = DefaultName
	}
	return DirectoryUser{
		ID:        u.ID,
		Name:      name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(CreatedAtLayout),
		IsReal:    true,
	}
}
