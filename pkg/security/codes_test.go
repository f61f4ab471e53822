package security_test

import (
	"strings"
	"testing"

	"github.com/myezz/restaurant-api/pkg/security"
)

func TestGenerateVerificationCode(t *testing.T) {
	code, err := security.GenerateVerificationCode(4)
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}
	if len(code) != 4 {
		t.Fatalf("expected 4 chars, got %q", code)
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("expected uppercase code, got %q", code)
	}
	if strings.ContainsAny(code, "01IO") {
		t.Fatalf("code %q contains ambiguous characters", code)
	}
}

func TestGenerateVerificationCodeRejectsZeroLength(t *testing.T) {
	if _, err := security.GenerateVerificationCode(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestMatchVerificationCode(t *testing.T) {
	cases := []struct {
		expected string
		provided string
		want     bool
	}{
		{"A1B2", "A1B2", true},
		{"A1B2", " a1b2 ", true},
		{"A1B2", "A1B3", false},
		{"A1B2", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := security.MatchVerificationCode(tc.expected, tc.provided); got != tc.want {
			t.Fatalf("MatchVerificationCode(%q, %q) = %v, want %v", tc.expected, tc.provided, got, tc.want)
		}
	}
}
