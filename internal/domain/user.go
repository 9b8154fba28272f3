package domain

import "time"

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address,omitempty"`
	BirthDate    string    `json:"birthDate,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	RUT          string    `json:"rut,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
