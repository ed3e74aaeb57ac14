package dates

import "testing"

func TestFormatToDisplay(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{name: "normal date", iso: "2024-05-05", want: "05/05/2024"},
		{name: "single digit day and month", iso: "2024-5-5", want: "05/05/2024"},
		{name: "end of year", iso: "2023-12-31", want: "31/12/2023"},
		{name: "empty input", iso: "", want: ""},
		{name: "two parts only", iso: "2024-05", want: ""},
		{name: "four parts", iso: "2024-05-05-01", want: ""},
		{name: "out of range passes through", iso: "2024-13-45", want: "45/13/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatToDisplay(tt.iso); got != tt.want {
				t.Errorf("FormatToDisplay(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{name: "normal date", display: "05/05/2024", want: "2024-05-05"},
		{name: "single digit day and month", display: "5/5/2024", want: "2024-05-05"},
		{name: "end of year", display: "31/12/2023", want: "2023-12-31"},
		{name: "empty input", display: "", want: ""},
		{name: "two parts only", display: "05/2024", want: ""},
		{name: "four parts", display: "05/05/2024/01", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDisplay(tt.display); got != tt.want {
				t.Errorf("ParseDisplay(%q) = %q, want %q", tt.display, got, tt.want)
			}
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	isoDates := []string{"2024-05-05", "2023-12-31", "2000-01-01", "1999-10-09"}

	for _, iso := range isoDates {
		display := FormatToDisplay(iso)
		if got := ParseDisplay(display); got != iso {
			t.Errorf("round trip of %q via %q = %q, want %q", iso, display, got, iso)
		}
	}
}

func TestFormatForAPI(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{name: "normal date", iso: "2024-05-05", want: "05-05-2024 00:00:00"},
		{name: "end of year", iso: "2023-12-31", want: "31-12-2023 00:00:00"},
		{name: "empty input", iso: "", want: ""},
		{name: "two parts only", iso: "2024-05", want: ""},
		{name: "out of range passes through", iso: "2024-13-45", want: "45-13-2024 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatForAPI(tt.iso); got != tt.want {
				t.Errorf("FormatForAPI(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}
