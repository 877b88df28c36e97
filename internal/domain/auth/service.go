package auth

import "context"

// AuthService checks employee credentials and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
