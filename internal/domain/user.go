package domain

import "time"

// User mirrors an identity-provider account into the local database so events
// and orders can reference organizers and buyers. Creation and updates happen
// out of band; this service only checks existence.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
}
