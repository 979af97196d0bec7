package utils

import "testing"

func TestFormatPhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765-43210", "9876543210"},
		{"91 98765 43210", "9876543210"},
		{"919876543210", "9876543210"},
		{"  98765 43210 ", "9876543210"},
	}

	for _, tc := range cases {
		if got := FormatPhoneNumber(tc.input); got != tc.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatPhoneNumberIdempotent(t *testing.T) {
	inputs := []string{"9876543210", "+91 98765-43210", "abc123", "", "919876543210"}
	for _, in := range inputs {
		once := FormatPhoneNumber(in)
		twice := FormatPhoneNumber(once)
		if once != twice {
			t.Errorf("FormatPhoneNumber not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false}, // leading digit below 6
		{"987654321", false},  // too short
		{"98765432100", false},
		{"", false},
		{"98765abcde", false},
	}

	for _, tc := range cases {
		if got := ValidatePhoneNumber(tc.input); got != tc.want {
			t.Errorf("ValidatePhoneNumber(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("GenerateOTP() returned %q, want 6 digits", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("GenerateOTP() returned non-digit %q", otp)
			}
		}
		if otp[0] == '0' {
			t.Fatalf("GenerateOTP() returned %q, want leading digit 1-9", otp)
		}
		seen[otp] = true
	}
	if len(seen) < 2 {
		t.Error("GenerateOTP() produced the same code 50 times")
	}
}
