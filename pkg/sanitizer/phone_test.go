package sanitizer

import "testing"

func TestOnlyDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted phone", input: "(555) 123-4567", want: "5551234567"},
		{name: "no digits", input: "abc", want: ""},
		{name: "mixed", input: "1a2b3", want: "123"},
		{name: "non-ascii digits dropped", input: "1٢3", want: "13"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OnlyDigits(tt.input)
			if got != tt.want {
				t.Errorf("OnlyDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for _, c := range got {
				if c < '0' || c > '9' {
					t.Errorf("OnlyDigits(%q) produced non-digit %q", tt.input, c)
				}
			}
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "two digits raw", input: "12", want: "12"},
		{name: "three digits raw", input: "123", want: "123"},
		{name: "four digits", input: "1234", want: "(123) 4"},
		{name: "six digits", input: "123456", want: "(123) 456"},
		{name: "seven digits", input: "1234567", want: "(123) 456-7"},
		{name: "ten digits", input: "5551234567", want: "(555) 123-4567"},
		{name: "strips separators", input: "555-123-4567", want: "(555) 123-4567"},
		{name: "caps at ten digits", input: "5551234567899", want: "(555) 123-4567"},
		{name: "already formatted", input: "(555) 123-4567", want: "(555) 123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPhoneNumber(tt.input)
			if got != tt.want {
				t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPhoneNumber_DigitsRoundTrip(t *testing.T) {
	inputs := []string{"", "9", "(12", "12-34-5", "phone: 555 123 4567 ext 89", "++1 800 FLOWERS 2"}

	for _, in := range inputs {
		want := OnlyDigits(in)
		if len(want) > PhoneDigits {
			want = want[:PhoneDigits]
		}
		if got := OnlyDigits(FormatPhoneNumber(in)); got != want {
			t.Errorf("digits of FormatPhoneNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted US number", input: "(212) 555-1234", want: "+12125551234"},
		{name: "raw digits", input: "2125551234", want: "+12125551234"},
		{name: "too short", input: "555-1234", want: ""},
		{name: "too long", input: "1 212 555 1234", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
