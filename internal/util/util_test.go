package util

import (
	"testing"
	"time"
)

func TestStartAndEndOfDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+8", 8*60*60)
	input := time.Date(2026, time.March, 14, 15, 9, 26, 535, loc)

	start := StartOfDay(input)
	if want := time.Date(2026, time.March, 14, 0, 0, 0, 0, loc); !start.Equal(want) {
		t.Fatalf("StartOfDay = %s, want %s", start, want)
	}

	end := EndOfDay(input)
	if want := time.Date(2026, time.March, 14, 23, 59, 59, 999000000, loc); !end.Equal(want) {
		t.Fatalf("EndOfDay = %s, want %s", end, want)
	}
	if end.Location() != loc {
		t.Fatalf("EndOfDay changed location to %s", end.Location())
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	loc := time.UTC

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", value: "2027-01-31", want: time.Date(2027, time.January, 31, 0, 0, 0, 0, loc)},
		{name: "trimmed", value: "  2027-02-01 ", want: time.Date(2027, time.February, 1, 0, 0, 0, 0, loc)},
		{name: "rfc3339", value: "2027-01-31T10:00:00+02:00", want: time.Date(2027, time.January, 31, 8, 0, 0, 0, loc)},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "31/01/2027", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tt.value, loc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error", tt.value)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseDate(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Fatalf("LoadLocation(\"\") = %v, %v; want time.Local", loc, err)
	}

	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Fatal("LoadLocation with unknown zone expected error")
	}
}
