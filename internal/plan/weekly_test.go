package plan

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		progress float64
		want     Phase
	}{
		{0.125, PhaseBase},
		{0.2499, PhaseBase},
		{0.25, PhaseBuild},
		{0.4999, PhaseBuild},
		{0.5, PhasePeak},
		{0.84, PhasePeak},
		{0.85, PhaseTaper},
		{1, PhaseTaper},
	}

	for _, tt := range tests {
		if got := phaseFor(tt.progress); got != tt.want {
			t.Errorf("phaseFor(%v) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestQualitySessions(t *testing.T) {
	tests := []struct {
		phase Phase
		days  int
		want  int
	}{
		{PhaseBase, 6, 1},
		{PhaseBuild, 5, 2},
		{PhaseBuild, 4, 2},
		{PhaseBuild, 3, 1},
		{PhasePeak, 3, 1},
		{PhaseTaper, 4, 1},
	}

	for _, tt := range tests {
		if got := qualitySessions(tt.phase, tt.days); got != tt.want {
			t.Errorf("qualitySessions(%q, %d) = %d, want %d", tt.phase, tt.days, got, tt.want)
		}
	}
}

func TestQualityMileage(t *testing.T) {
	tests := []struct {
		name         string
		mileage      int
		phase        Phase
		sessions     int
		wantInterval int
		wantTempo    int
	}{
		{"single session uses tempo minimum", 16, PhaseBase, 1, 0, 3},
		{"two sessions split 40/60", 29, PhasePeak, 2, 3, 3},
		{"two sessions scaled to cap", 20, PhasePeak, 2, 2, 3},
		{"taper cap keeps tempo floor", 14, PhaseTaper, 1, 0, 3},
		{"no sessions", 30, PhasePeak, 0, 0, 0},
		{"larger week", 40, PhaseBuild, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, tempo := qualityMileage(tt.mileage, tt.phase, tt.sessions)
			if interval != tt.wantInterval || tempo != tt.wantTempo {
				t.Errorf("qualityMileage(%d, %q, %d) = (%d, %d), want (%d, %d)",
					tt.mileage, tt.phase, tt.sessions, interval, tempo, tt.wantInterval, tt.wantTempo)
			}
		})
	}
}

func TestGenerateWeeklyPlanFirstWeek(t *testing.T) {
	week := GenerateWeeklyPlan(1, 8, Race5K, Pace{6, 0}, Pace{5, 30}, 5)

	if week.Week != 1 {
		t.Errorf("Week = %d, want 1", week.Week)
	}
	if week.Phase != PhaseBase {
		t.Errorf("Phase = %q, want %q", week.Phase, PhaseBase)
	}
	if week.TotalMileage != "16 km" {
		t.Errorf("TotalMileage = %q, want 16 km", week.TotalMileage)
	}

	want := []struct {
		day      string
		workout  string
		dayType  DayType
		pace     string
		distance string
	}{
		{"Monday", "Rest or Cross-Training", DayRest, "", ""},
		{"Tuesday", "Strides + Drills", DayEasy, "6:56/km", "3-4 km easy + strides"},
		{"Wednesday", "Easy Run", DayEasy, "6:56/km", "3 km"},
		{"Thursday", "Tempo / Threshold Run", DayQuality, "6:11/km", "3 km"},
		{"Friday", "Rest", DayRest, "", ""}, // trimmed: six active days, budget of five
		{"Saturday", "Long Zone 2 Run", DayLong, "6:56/km", "6 km"},
		{"Sunday", "Recovery Run", DayRecovery, "7:11/km", "3 km"},
	}

	if len(week.Days) != len(want) {
		t.Fatalf("len(Days) = %d, want %d", len(week.Days), len(want))
	}
	for i, w := range want {
		got := week.Days[i]
		if got.Day != w.day {
			t.Errorf("Days[%d].Day = %q, want %q", i, got.Day, w.day)
		}
		if got.Workout != w.workout {
			t.Errorf("%s workout = %q, want %q", w.day, got.Workout, w.workout)
		}
		if got.Type != w.dayType {
			t.Errorf("%s type = %q, want %q", w.day, got.Type, w.dayType)
		}
		if got.Pace != w.pace {
			t.Errorf("%s pace = %q, want %q", w.day, got.Pace, w.pace)
		}
		if got.Distance != w.distance {
			t.Errorf("%s distance = %q, want %q", w.day, got.Distance, w.distance)
		}
	}
}

func TestGenerateWeeklyPlanIntervals(t *testing.T) {
	// 10K week 6: progress 0.6, Peak Training, 29 km
	week := GenerateWeeklyPlan(6, 10, Race10K, Pace{6, 0}, Pace{5, 30}, 5)

	if week.Phase != PhasePeak {
		t.Fatalf("Phase = %q, want %q", week.Phase, PhasePeak)
	}
	tuesday := week.Days[1]
	if tuesday.Workout != "Interval Training" || tuesday.Type != DayQuality {
		t.Errorf("Tuesday = %q (%q), want Interval Training (quality)", tuesday.Workout, tuesday.Type)
	}
	if tuesday.Distance != "3 km" {
		t.Errorf("Tuesday distance = %q, want 3 km", tuesday.Distance)
	}
	// min(6 + floor(0.6*4), 10) = 8 reps
	if want := "8x400m"; !strings.Contains(tuesday.Description, want) {
		t.Errorf("Tuesday description = %q, want it to contain %q", tuesday.Description, want)
	}
}

func TestRaceWeekTrimming(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantRest []time.Weekday
	}{
		{"three days drops wednesday then tuesday", 3, []time.Weekday{time.Wednesday, time.Tuesday}},
		{"one day keeps only the race", 1, []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Saturday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := GenerateWeeklyPlan(8, 8, Race5K, Pace{6, 0}, Pace{5, 30}, tt.days)

			for _, d := range tt.wantRest {
				got := week.Days[dayIndex(d)]
				if got.Type != DayRest {
					t.Errorf("%s type = %q, want rest", d, got.Type)
				}
				if got.Pace != "" || got.Distance != "" {
					t.Errorf("%s kept pace %q / distance %q after trimming", d, got.Pace, got.Distance)
				}
			}

			sunday := week.Days[6]
			if sunday.Type != DayQuality || !strings.Contains(sunday.Workout, "RACE DAY") {
				t.Errorf("Sunday = %q (%q), want race day", sunday.Workout, sunday.Type)
			}
			if got := activeDays(week); got > tt.days {
				t.Errorf("active days = %d, want <= %d", got, tt.days)
			}
		})
	}
}

func TestTrainingWeekTrimOrder(t *testing.T) {
	// Marathon week 8 of 16 is a 45 km peak week with six active days:
	// Tue, Wed 7 km, Thu, Fri 6 km, Sat long, Sun 7 km recovery.
	tests := []struct {
		days     int
		wantRest []time.Weekday
	}{
		{6, nil},
		{5, []time.Weekday{time.Friday}},
		{4, []time.Weekday{time.Friday, time.Sunday}},
		{3, []time.Weekday{time.Friday, time.Sunday, time.Tuesday}},
		{2, []time.Weekday{time.Friday, time.Sunday, time.Tuesday, time.Wednesday}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days", tt.days), func(t *testing.T) {
			week := GenerateWeeklyPlan(8, 16, RaceFull, Pace{6, 0}, Pace{5, 30}, tt.days)
			if week.Phase != PhasePeak {
				t.Fatalf("Phase = %q, want %q", week.Phase, PhasePeak)
			}

			rest := map[time.Weekday]bool{time.Monday: true}
			for _, d := range tt.wantRest {
				rest[d] = true
			}
			for _, d := range weekdays {
				got := week.Days[dayIndex(d)]
				if rest[d] && got.Type != DayRest {
					t.Errorf("%s type = %q, want rest", d, got.Type)
				}
				if !rest[d] && got.Type == DayRest {
					t.Errorf("%s was trimmed, want it kept", d)
				}
			}

			if got := activeDays(week); got != tt.days {
				t.Errorf("active days = %d, want %d", got, tt.days)
			}
			if week.Days[dayIndex(time.Thursday)].Type != DayQuality {
				t.Errorf("Thursday type = %q, want quality", week.Days[dayIndex(time.Thursday)].Type)
			}
		})
	}
}

func TestTrimPriorityKeepsLongRun(t *testing.T) {
	for _, d := range Distances() {
		info, _ := d.Info()
		for days := 1; days <= MaxTrainingDays; days++ {
			for wk := 1; wk < info.Weeks; wk++ {
				week := GenerateWeeklyPlan(wk, info.Weeks, d, Pace{6, 0}, Pace{5, 30}, days)
				if week.Days[5].Type != DayLong {
					t.Fatalf("%s week %d, %d days: Saturday type = %q, want long", d, wk, days, week.Days[5].Type)
				}
			}
		}
	}
}

func dayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func activeDays(w TrainingWeek) int {
	n := 0
	for _, d := range w.Days {
		if d.Type.Active() {
			n++
		}
	}
	return n
}
