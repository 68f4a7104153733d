package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-08-12", want: New(2025, time.August, 12)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025-13-01", wantErr: true},
		{in: "12/08/2025", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestString_NormalizesToISO(t *testing.T) {
	d := MustParse("2025-7-1")
	if got, want := d.String(), "2025-07-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Day overflow rolls into the next month, like time.Date does.
	d := New(2025, time.January, 32)
	if got, want := d.String(), "2025-02-01"; got != want {
		t.Errorf("New(2025, January, 32) = %q, want %q", got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	a := MustParse("2025-08-01")
	b := MustParse("2025-08-02")
	if !a.Before(b) {
		t.Error("a.Before(b) = false, want true")
	}
	if !b.After(a) {
		t.Error("b.After(a) = false, want true")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date must be neither before nor after itself")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-08-12")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(data), `"2025-08-12"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
