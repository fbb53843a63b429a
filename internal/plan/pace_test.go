package plan

import (
	"errors"
	"testing"
)

func TestPaceToSeconds(t *testing.T) {
	tests := []struct {
		name string
		pace Pace
		want int
	}{
		{"zero", Pace{0, 0}, 0},
		{"six minutes", Pace{6, 0}, 360},
		{"five thirty", Pace{5, 30}, 330},
		{"seconds overflow", Pace{4, 75}, 315},
		{"negative floors at zero", Pace{-1, 0}, 0},
		{"negative seconds", Pace{0, -20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaceToSeconds(tt.pace); got != tt.want {
				t.Errorf("PaceToSeconds(%v) = %d, want %d", tt.pace, got, tt.want)
			}
		})
	}
}

func TestSecondsToPace(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    Pace
	}{
		{"exact", 330, Pace{5, 30}},
		{"rounds down", 125.4, Pace{2, 5}},
		{"rounds up into next minute", 59.5, Pace{1, 0}},
		{"negative clamps", -10, Pace{0, 0}},
		{"interpolated", 356.25, Pace{5, 56}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecondsToPace(tt.seconds); got != tt.want {
				t.Errorf("SecondsToPace(%v) = %+v, want %+v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatPace(t *testing.T) {
	tests := []struct {
		pace Pace
		want string
	}{
		{Pace{6, 0}, "6:00/km"},
		{Pace{4, 5}, "4:05/km"},
		{Pace{5, 75}, "6:15/km"},
		{Pace{-3, 0}, "0:00/km"},
	}

	for _, tt := range tests {
		if got := FormatPace(tt.pace); got != tt.want {
			t.Errorf("FormatPace(%+v) = %q, want %q", tt.pace, got, tt.want)
		}
	}
}

func TestPaceNormalizationIsStable(t *testing.T) {
	for m := 0; m < 12; m++ {
		for s := 0; s < 60; s++ {
			p := Pace{m, s}
			if got := SecondsToPace(float64(PaceToSeconds(p))); got != p {
				t.Fatalf("round trip of %+v = %+v", p, got)
			}
			once := FormatPace(p)
			parsed, err := ParsePace(once)
			if err != nil {
				t.Fatalf("ParsePace(%q) error = %v", once, err)
			}
			if twice := FormatPace(parsed); twice != once {
				t.Fatalf("FormatPace not stable: %q then %q", once, twice)
			}
		}
	}
}

func TestDerivedPaces(t *testing.T) {
	base := Pace{5, 0}

	if got := EasyPace(base); got != "6:00/km" {
		t.Errorf("EasyPace = %q, want 6:00/km", got)
	}
	if got := TempoPace(base); got != "5:15/km" {
		t.Errorf("TempoPace = %q, want 5:15/km", got)
	}
	if got := IntervalPace(base); got != "4:45/km" {
		t.Errorf("IntervalPace = %q, want 4:45/km", got)
	}

	// Interval pace can't go below zero
	if got := IntervalPace(Pace{0, 10}); got != "0:00/km" {
		t.Errorf("IntervalPace near zero = %q, want 0:00/km", got)
	}
}

func TestParsePace(t *testing.T) {
	tests := []struct {
		input   string
		want    Pace
		wantErr bool
	}{
		{input: "6:00", want: Pace{6, 0}},
		{input: "5:30/km", want: Pace{5, 30}},
		{input: " 4:05 ", want: Pace{4, 5}},
		{input: "7", want: Pace{7, 0}},
		{input: "5:75", want: Pace{5, 59}},
		{input: "-2:10", want: Pace{0, 10}},
		{input: "75:00", want: Pace{59, 0}},
		{input: "", wantErr: true},
		{input: "fast", wantErr: true},
		{input: "5:xx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePace(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPace) {
					t.Errorf("ParsePace(%q) error = %v, want ErrInvalidPace", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePace(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePace(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
