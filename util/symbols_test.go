package util

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"RELIANCE", "RELIANCE.NS"},
		{"reliance", "RELIANCE.NS"},
		{"  tcs  ", "TCS.NS"},
		{"RELIANCE.NS", "RELIANCE.NS"},
		{"TATAMOTORS.BO", "TATAMOTORS.BO"},
		{"^NSEI", "^NSEI"},
		{"^nsebank", "^NSEBANK"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSymbol(tt.in); got != tt.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}

		// Applying it twice must not change anything further.
		once := NormalizeSymbol(tt.in)
		if twice := NormalizeSymbol(once); twice != once {
			t.Errorf("NormalizeSymbol not idempotent: %q -> %q -> %q", tt.in, once, twice)
		}
	}
}

func TestIsIndex(t *testing.T) {
	t.Parallel()

	if !IsIndex("^NSEI") {
		t.Error("^NSEI should be an index")
	}
	if IsIndex("RELIANCE.NS") {
		t.Error("RELIANCE.NS should not be an index")
	}
	if IsIndex("") {
		t.Error("empty symbol should not be an index")
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"RELIANCE.NS", "RELIANCE"},
		{"^NSEI", "^NSEI"},
		{"TATAMOTORS.BO", "TATAMOTORS.BO"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
