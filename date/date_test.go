package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input     string
		want      Date
		expectErr bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"2024-02-29", New(2024, 2, 29), false},
		{"2025-02-30", Date{}, true},
		{"01/07/2025", Date{}, true},
		{"Day1", Date{}, true},
		{"", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.expectErr {
				t.Fatalf("Parse(%q) error = %v, want error: %v", tc.input, err, tc.expectErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, 1, 32), New(2025, 2, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
}

func TestRange(t *testing.T) {
	r := Range{From: MustParse("2025-01-30"), To: MustParse("2025-02-02")}

	if got := r.Days(); got != 3 {
		t.Errorf("Days() = %d, want 3", got)
	}
	if got, want := r.String(), "2025-01-30..2025-02-02"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	got, err := New(2025, 7, 1).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if want := `"2025-07-01"`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
