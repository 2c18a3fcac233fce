package dto

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r LoginRequest) Validate() error {
	return checkStruct(r)
}

// RegisterRequest carries the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r RegisterRequest) Validate() error {
	return checkStruct(r)
}

// ResetPasswordRequest carries the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ResetPasswordRequest) Validate() error {
	return checkStruct(r)
}
