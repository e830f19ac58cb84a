package domain

import "time"

type User struct {
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	FullName    string     `json:"full_name,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Registration is the payload for creating a new account. Registering does
// not log the user in; the caller logs in separately afterwards.
type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type Credentials struct {
	Username string
	Password string
}
