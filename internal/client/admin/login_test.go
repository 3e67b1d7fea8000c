package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/oshaad/backoffice/internal/client/catalog"
)

// fakeAuth implements Authenticator with function fields.
type fakeAuth struct {
	loginFn func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginFn(ctx, email, password)
}

// memoryTokens implements TokenStore in memory.
type memoryTokens struct {
	token string
}

func (m *memoryTokens) Token() string               { return m.token }
func (m *memoryTokens) SetToken(token string) error { m.token = token; return nil }
func (m *memoryTokens) Clear() error                { m.token = ""; return nil }

func TestLoginFlow_Authenticate(t *testing.T) {
	tokens := &memoryTokens{}
	flow := &LoginFlow{
		Auth: &fakeAuth{loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "admin@oshaad.com" || password != "secret" {
				t.Errorf("unexpected credentials: %q %q", email, password)
			}
			return "signed-token", nil
		}},
		Tokens: tokens,
	}

	if err := flow.Authenticate(context.Background(), "admin@oshaad.com", "secret"); err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if tokens.token != "signed-token" {
		t.Errorf("stored token = %q; want %q", tokens.token, "signed-token")
	}
}

func TestLoginFlow_AlreadyAuthorized(t *testing.T) {
	flow := &LoginFlow{
		Auth: &fakeAuth{loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatal("login must not be called when a token is already stored")
			return "", nil
		}},
		Tokens: &memoryTokens{token: "existing"},
	}

	err := flow.Authenticate(context.Background(), "admin@oshaad.com", "secret")
	if !errors.Is(err, ErrAlreadyAuthorized) {
		t.Fatalf("expected ErrAlreadyAuthorized, got %v", err)
	}
}

func TestLoginFlow_EmptyTokenIsFailure(t *testing.T) {
	tokens := &memoryTokens{}
	flow := &LoginFlow{
		Auth: &fakeAuth{loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", nil
		}},
		Tokens: tokens,
	}

	if err := flow.Authenticate(context.Background(), "admin@oshaad.com", "secret"); err == nil {
		t.Fatal("expected an error for a response without a token")
	}
	if tokens.token != "" {
		t.Errorf("expected nothing stored, got %q", tokens.token)
	}
}

func TestLoginFlow_FailureStoresNothing(t *testing.T) {
	tokens := &memoryTokens{}
	flow := &LoginFlow{
		Auth: &fakeAuth{loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", &catalog.AuthError{Message: "Invalid email or password"}
		}},
		Tokens: tokens,
	}

	err := flow.Authenticate(context.Background(), "admin@oshaad.com", "wrong")
	var authErr *catalog.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected the client error to pass through, got %v", err)
	}
	if tokens.token != "" {
		t.Errorf("expected nothing stored, got %q", tokens.token)
	}
}

func TestLoginFlow_Logout(t *testing.T) {
	tokens := &memoryTokens{token: "existing"}
	flow := &LoginFlow{Tokens: tokens}

	if err := flow.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if tokens.token != "" {
		t.Errorf("expected the session cleared, got %q", tokens.token)
	}
}
