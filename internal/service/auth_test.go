package service

import (
	"context"
	"testing"
	"time"

	"github.com/bookrack/bookrack-go/internal/model"
	"github.com/bookrack/bookrack-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestSignupEmptyUsername(t *testing.T) {
	svc := newTestAuthService()

	msgs, err := svc.Signup(context.Background(), model.SignupForm{
		Username: "",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("Signup() returned %d messages, want 1: %v", len(msgs), msgs)
	}
	if msgs[0] != "Username is required" {
		t.Errorf("Signup() message = %q, want %q", msgs[0], "Username is required")
	}
}

func TestSignupShortPassword(t *testing.T) {
	svc := newTestAuthService()

	msgs, err := svc.Signup(context.Background(), model.SignupForm{
		Username: "alice",
		Password: "12345",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("Signup() returned %d messages, want 1: %v", len(msgs), msgs)
	}
	if msgs[0] != "Password should be 6 characters or more" {
		t.Errorf("Signup() message = %q, want %q", msgs[0], "Password should be 6 characters or more")
	}
}

func TestSignupInvalidFormSkipsStore(t *testing.T) {
	// The repository is constructed with a nil *sql.DB, so any store call
	// would panic. Reaching the assertions proves validation short-circuits.
	svc := newTestAuthService()

	msgs, err := svc.Signup(context.Background(), model.SignupForm{})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatal("Signup() expected validation messages for an empty form")
	}
}
