package admin

import (
	"context"
	"errors"
	"testing"

	"coachly/config"
	"coachly/utils"

	"golang.org/x/crypto/bcrypt"
)

func configureAdmin(t *testing.T, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	prev := config.AppConfig
	config.AppConfig.AdminEmail = email
	config.AppConfig.AdminPasswordHash = string(hash)
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestSignIn(t *testing.T) {
	configureAdmin(t, "admin@coachly.dev", "hunter22")
	svc := &DefaultAuthService{}

	token, err := svc.SignIn(context.Background(), "admin@coachly.dev", "hunter22")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	id, err := utils.ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if id != "admin" {
		t.Errorf("token subject: got %q, want %q", id, "admin")
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	configureAdmin(t, "admin@coachly.dev", "hunter22")
	svc := &DefaultAuthService{}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@coachly.dev", "hunter23"},
		{"wrong email", "someone@coachly.dev", "hunter22"},
		{"empty email", "", "hunter22"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SignIn(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
