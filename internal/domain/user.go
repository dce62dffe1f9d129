package domain

// User is the identity used to namespace persisted data
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	IsGoogleLogin bool   `json:"isGoogleLogin"`
}

// RegisteredUser is a registry row. PasswordHash is a simulated, unsalted digest.
type RegisteredUser struct {
	User
	PasswordHash string `json:"passwordHash,omitempty"`
}
