package title

import "testing"

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"shouldReturnTrue", "Return True"},
		{"testUserCanLogin", "User Can Login"},
		{"opens_a_door", "Opens a Door"},
		{"shut_the_door", "Shut the Door"},
		{"login", "Login"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Humanize(tt.in); got != tt.want {
			t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHumanize_StripsOnePrefixOnly(t *testing.T) {
	// Only the leading token is stripped; later occurrences stay.
	got := Humanize("testShouldWork")
	if got != "Should Work" {
		t.Errorf("Humanize(testShouldWork) = %q, want %q", got, "Should Work")
	}
}

func TestHumanize_TotalOverArbitraryInput(t *testing.T) {
	// Never panics, always returns something.
	inputs := []string{"___", "123", "ALLCAPS", "with spaces already", "@#$%"}
	for _, in := range inputs {
		_ = Humanize(in)
	}
}
