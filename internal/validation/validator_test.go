package validation

import (
	"testing"

	"github.com/bookrack/bookrack-go/internal/model"
)

func TestMessagesValid(t *testing.T) {
	v := New()

	msgs := v.Messages(model.SignupForm{Username: "alice", Password: "secret1"})
	if msgs != nil {
		t.Errorf("Messages() = %v, want nil for a valid form", msgs)
	}
}

func TestMessagesMissingUsername(t *testing.T) {
	v := New()

	msgs := v.Messages(model.SignupForm{Username: "", Password: "secret1"})
	if len(msgs) != 1 {
		t.Fatalf("Messages() returned %d messages, want 1: %v", len(msgs), msgs)
	}
	if msgs[0] != "Username is required" {
		t.Errorf("Messages()[0] = %q, want %q", msgs[0], "Username is required")
	}
}

func TestMessagesShortPassword(t *testing.T) {
	v := New()

	msgs := v.Messages(model.SignupForm{Username: "alice", Password: "short"})
	if len(msgs) != 1 {
		t.Fatalf("Messages() returned %d messages, want 1: %v", len(msgs), msgs)
	}
	if msgs[0] != "Password should be 6 characters or more" {
		t.Errorf("Messages()[0] = %q, want %q", msgs[0], "Password should be 6 characters or more")
	}
}

func TestMessagesMultipleFields(t *testing.T) {
	v := New()

	msgs := v.Messages(model.SignupForm{})
	if len(msgs) != 2 {
		t.Fatalf("Messages() returned %d messages, want 2: %v", len(msgs), msgs)
	}
}
