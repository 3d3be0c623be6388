package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "  Maker@Example.COM ", want: "maker@example.com"},
		{raw: "", want: ""},
		{raw: "not-an-email", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeAuthEmail(tt.raw); got != tt.want {
			t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCredentialsInputRejectsBlankPassword(t *testing.T) {
	t.Parallel()

	if _, _, err := NormalizeCredentialsInput("maker@example.com", "   "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}

	email, password, err := NormalizeCredentialsInput(" Maker@example.com", " Secret123 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "maker@example.com" || password != "Secret123" {
		t.Fatalf("unexpected normalized credentials %q / %q", email, password)
	}
}
