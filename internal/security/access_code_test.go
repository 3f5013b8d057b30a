package security

import (
	"strings"
	"testing"
)

func TestNewAccessCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := NewAccessCode()
		if err != nil {
			t.Fatalf("NewAccessCode: %v", err)
		}
		if !IsValidAccessCodeFormat(code) {
			t.Fatalf("generated code %q does not match the canonical format", code)
		}
		if strings.ContainsAny(code, "0O1IL") {
			t.Fatalf("code %q contains a confusable character", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q within 50 draws", code)
		}
		seen[code] = true
	}
}

func TestIsValidAccessCodeFormat(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"BSTP-7K2M-Q9XW-4RTZ", true},
		{"  BSTP-7K2M-Q9XW-4RTZ  ", true},
		{"bstp-7k2m-q9xw-4rtz", false},
		{"BSTP-7K2M-Q9XW", false},
		{"XXXX-7K2M-Q9XW-4RTZ", false},
		{"", false},
	}
	for _, testCase := range cases {
		if got := IsValidAccessCodeFormat(testCase.code); got != testCase.want {
			t.Fatalf("IsValidAccessCodeFormat(%q) = %v, want %v", testCase.code, got, testCase.want)
		}
	}
}

func TestRandomString(t *testing.T) {
	value, err := RandomString(16, "AB")
	if err != nil {
		t.Fatalf("RandomString: %v", err)
	}
	if len(value) != 16 {
		t.Fatalf("length = %d, want 16", len(value))
	}
	for _, char := range value {
		if char != 'A' && char != 'B' {
			t.Fatalf("character %q outside the alphabet", char)
		}
	}

	if empty, err := RandomString(0, "AB"); err != nil || empty != "" {
		t.Fatalf("RandomString(0) = %q, %v", empty, err)
	}
	if _, err := RandomString(-1, "AB"); err == nil {
		t.Fatal("negative length must error")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("empty alphabet must error")
	}
}
