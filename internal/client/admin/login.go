package admin

import (
	"context"
	"errors"
)

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenStore is the session storage the login flow writes to.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// ErrAlreadyAuthorized is returned when a token is already stored; the
// login view treats "already authenticated" as terminal and goes straight
// to the protected area.
var ErrAlreadyAuthorized = errors.New("already logged in")

// LoginFlow performs the single-shot login: authenticate, persist the
// returned token, done. Logging out clears the store; nothing else ever
// demotes the session.
type LoginFlow struct {
	Auth   Authenticator
	Tokens TokenStore
}

// Authenticate exchanges the credentials for a token and stores it.
// A response without a token is treated as a failure.
func (f *LoginFlow) Authenticate(ctx context.Context, email, password string) error {
	if f.Tokens.Token() != "" {
		return ErrAlreadyAuthorized
	}

	token, err := f.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("login successful, but no token received")
	}
	return f.Tokens.SetToken(token)
}

// Logout clears the stored session.
func (f *LoginFlow) Logout() error {
	return f.Tokens.Clear()
}
