package env

import "testing"

func TestGetFallsBackWhenUnset(t *testing.T) {
	t.Setenv("MYEZZ_TEST_VALUE", "")
	if got := Get("MYEZZ_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("MYEZZ_TEST_VALUE", " console ")
	if got := Get("MYEZZ_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		raw      string
		fallback bool
		want     bool
	}{
		{raw: "", fallback: true, want: true},
		{raw: "true", fallback: false, want: true},
		{raw: "0", fallback: true, want: false},
		{raw: "nope", fallback: true, want: true},
	}
	for _, tc := range cases {
		t.Setenv("MYEZZ_TEST_FLAG", tc.raw)
		if got := Bool("MYEZZ_TEST_FLAG", tc.fallback); got != tc.want {
			t.Fatalf("Bool(%q, %v) = %v, want %v", tc.raw, tc.fallback, got, tc.want)
		}
	}
}
