package plan

import "strings"

// DayType classifies a training day
type DayType string

const (
	DayRest     DayType = "rest"
	DayEasy     DayType = "easy"
	DayQuality  DayType = "quality"
	DayLong     DayType = "long"
	DayRecovery DayType = "recovery"
)

// Active reports whether the day counts toward the weekly training-day budget
func (t DayType) Active() bool {
	return t != "" && t != DayRest
}

// Phase is a named block of the plan
type Phase string

const (
	PhaseBase  Phase = "Base Building"
	PhaseBuild Phase = "Build Phase"
	PhasePeak  Phase = "Peak Training"
	PhaseTaper Phase = "Taper"
)

// Training-day budget accepted at the input boundary
const (
	MinTrainingDays = 3
	MaxTrainingDays = 6
)

// TrainingDay is one calendar day in a week
type TrainingDay struct {
	Day         string  `json:"day" yaml:"day"`
	Workout     string  `json:"workout" yaml:"workout"`
	Description string  `json:"description" yaml:"description"`
	Type        DayType `json:"dayType,omitempty" yaml:"dayType,omitempty"`
	Pace        string  `json:"pace,omitempty" yaml:"pace,omitempty"`
	Distance    string  `json:"distance,omitempty" yaml:"distance,omitempty"`
}

const raceDayPrefix = "RACE DAY - "

// IsRaceDay reports whether the day is the goal race
func (d TrainingDay) IsRaceDay() bool {
	return strings.HasPrefix(d.Workout, raceDayPrefix)
}

// TrainingWeek is one week of the plan, Monday through Sunday
type TrainingWeek struct {
	Week         int           `json:"week" yaml:"week"`
	Phase        Phase         `json:"phase" yaml:"phase"`
	Days         []TrainingDay `json:"days" yaml:"days"`
	TotalMileage string        `json:"totalMileage" yaml:"totalMileage"`
	MileageKm    int           `json:"mileageKm" yaml:"mileageKm"`
}

// TrainingPlan is the full generated schedule
type TrainingPlan struct {
	Distance     RaceDistance   `json:"distance" yaml:"distance"`
	CurrentPace  Pace           `json:"currentPace" yaml:"currentPace"`
	TargetPace   Pace           `json:"targetPace" yaml:"targetPace"`
	TrainingDays int            `json:"trainingDays" yaml:"trainingDays"`
	Weeks        []TrainingWeek `json:"weeks" yaml:"weeks"`
	Summary      string         `json:"summary" yaml:"summary"`
}

// Info returns the metadata for the plan's race distance
func (p *TrainingPlan) Info() DistanceInfo {
	info, _ := p.Distance.Info()
	return info
}

// WeeklyMileage returns each week's target mileage in km, in week order
func (p *TrainingPlan) WeeklyMileage() []float64 {
	out := make([]float64, len(p.Weeks))
	for i, w := range p.Weeks {
		out[i] = float64(w.MileageKm)
	}
	return out
}
