package models

// User represents a user in the system
type User struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Admin        bool   `json:"admin"`
}

// UserClientFields lists the fields a client may set on a user
var UserClientFields = []string{"name", "email", "password", "admin"}

// CreateUserRequest represents a signup request body
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Admin    bool   `json:"admin"`
}

// CreateUserResponse is returned after a successful signup
type CreateUserResponse struct {
	ID    ID     `json:"id"`
	Email string `json:"email"`
}

// LoginRequest represents a login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the public part of a user returned on login
type LoginUser struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
