package title

import "testing"

func TestDecamelize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dataForUSACounties", "data_for_USA_counties"},
		{"myURLstring", "my_UR_lstring"},
		{"shouldReturnTrue", "should_return_true"},
		{"testUserCanLogin", "test_user_can_login"},
		{"already_snake_case", "already_snake_case"},
		{"HTMLParser", "HTML_parser"},
		{"simple", "simple"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Decamelize(tt.in); got != tt.want {
			t.Errorf("Decamelize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecamelize_PassOrder(t *testing.T) {
	// Each pass consumes the previous pass's output; the intermediate
	// states for the canonical example are fixed by the algorithm.
	s := "dataForUSACounties"

	s = caseBoundary.ReplaceAllString(s, "${1}"+Separator+"${2}")
	if s != "data_For_USACounties" {
		t.Fatalf("After pass 1: %q", s)
	}

	s = lowerIsolated(s)
	if s != "data_for_USACounties" {
		t.Fatalf("After pass 2: %q", s)
	}

	if got := Decamelize("dataForUSACounties"); got != "data_for_USA_counties" {
		t.Fatalf("After pass 3: %q", got)
	}
}
