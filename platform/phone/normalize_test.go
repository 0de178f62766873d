package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"08031234567", "+2348031234567", true},
		{" +234 803 123 4567 ", "+2348031234567", true},
		{"call me", "call me", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeE164(tc.in)
		if got != tc.want || ok != tc.valid {
			t.Errorf("NormalizeE164(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.valid)
		}
	}
}
