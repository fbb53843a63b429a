package plan

import (
	"fmt"
	"time"
)

// weekdays is the fixed Monday-first day order of every week
var weekdays = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Order in which days are given up when the week has more active days than the budget
var (
	trimPriority     = []time.Weekday{time.Friday, time.Sunday, time.Tuesday, time.Wednesday, time.Thursday, time.Saturday}
	raceTrimPriority = []time.Weekday{time.Wednesday, time.Friday, time.Tuesday, time.Saturday, time.Thursday}
)

// Quality and easy mileage policy
const (
	qualityFractionLight = 0.12 // base building and taper
	qualityFractionFull  = 0.20
	qualityCapTaper      = 0.15
	qualityCapDefault    = 0.22

	intervalShare = 0.4
	tempoShare    = 0.6
	minQualityKm  = 3
	minIntervalKm = 2 // floor after cap scaling

	longRunShare   = 0.45
	minLongRunKm   = 6
	midweekShare   = 0.2
	minMidweekKm   = 3
	taperReduction = 0.6
)

// phaseFor classifies progress (week/totalWeeks) into a training phase
func phaseFor(progress float64) Phase {
	switch {
	case progress < 0.25:
		return PhaseBase
	case progress < 0.5:
		return PhaseBuild
	case progress < 0.85:
		return PhasePeak
	default:
		return PhaseTaper
	}
}

// baseMileage is the distance-specific weekly km before the taper reduction
func baseMileage(d RaceDistance, progress float64) float64 {
	switch d {
	case Race5K:
		return 15 + progress*10
	case Race10K:
		return 20 + progress*15
	case RaceHalf:
		return 25 + progress*20
	default:
		return 30 + progress*30
	}
}

// qualitySessions returns how many interval/tempo sessions fit the phase and day budget
func qualitySessions(phase Phase, trainingDays int) int {
	sessions := 2
	if phase == PhaseBase || phase == PhaseTaper {
		sessions = 1
	}

	switch {
	case trainingDays >= 5:
		return sessions
	case trainingDays == 4:
		return min(sessions, 2)
	default:
		return min(sessions, 1)
	}
}

// qualityMileage splits the quality budget into interval and tempo km.
// The combined total is scaled down to the phase cap when the minimums overshoot it.
func qualityMileage(weeklyMileage int, phase Phase, sessions int) (interval, tempo int) {
	light := phase == PhaseBase || phase == PhaseTaper

	fraction := qualityFractionFull
	if light {
		fraction = qualityFractionLight
	}
	target := float64(weeklyMileage) * fraction

	switch {
	case sessions >= 2:
		interval = max(round(target*intervalShare), minQualityKm)
		tempo = max(round(target*tempoShare), minQualityKm)
	case sessions == 1:
		tempo = max(round(target), minQualityKm)
	default:
		return 0, 0
	}

	capShare := qualityCapDefault
	if phase == PhaseTaper {
		capShare = qualityCapTaper
	}
	qualityCap := round(float64(weeklyMileage) * capShare)

	if total := interval + tempo; total > qualityCap {
		scale := float64(qualityCap) / float64(total)
		if interval > 0 {
			interval = max(round(float64(interval)*scale), minIntervalKm)
		}
		tempo = max(round(float64(tempo)*scale), minQualityKm)
	}

	return interval, tempo
}

// easyShare takes round(easy*share) km, at least floor, never more than remaining
func easyShare(easy int, share float64, floor, remaining int) int {
	return min(max(round(float64(easy)*share), floor), remaining)
}

// week holds everything derived for one week before days are rendered
type week struct {
	num        int
	total      int
	progress   float64
	phase      Phase
	distance   RaceDistance
	info       DistanceInfo
	pace       Pace // interpolated pace for this week
	targetPace Pace
	mileage    int
	sessions   int
	intervalKm int
	tempoKm    int
	longKm     int
	wednesday  int
	sunday     int
	friday     int
}

func newWeek(weekNum, totalWeeks int, distance RaceDistance, currentPace, targetPace Pace, trainingDays int) week {
	progress := float64(weekNum) / float64(totalWeeks)

	currentSec := float64(PaceToSeconds(currentPace))
	targetSec := float64(PaceToSeconds(targetPace))
	weekPace := SecondsToPace(currentSec - (currentSec-targetSec)*progress)

	phase := phaseFor(progress)

	multiplier := 1.0
	if phase == PhaseTaper {
		multiplier = taperReduction
	}
	mileage := round(baseMileage(distance, progress) * multiplier)

	sessions := qualitySessions(phase, trainingDays)
	interval, tempo := qualityMileage(mileage, phase, sessions)

	easy := max(mileage-interval-tempo, 0)
	longKm := min(max(round(float64(easy)*longRunShare), minLongRunKm), easy)
	remaining := easy - longKm
	wednesday := easyShare(easy, midweekShare, minMidweekKm, remaining)
	remaining -= wednesday
	sunday := easyShare(easy, midweekShare, minMidweekKm, remaining)
	remaining -= sunday

	return week{
		num:        weekNum,
		total:      totalWeeks,
		progress:   progress,
		phase:      phase,
		distance:   distance,
		info:       distance.mustInfo(),
		pace:       weekPace,
		targetPace: targetPace,
		mileage:    mileage,
		sessions:   sessions,
		intervalKm: interval,
		tempoKm:    tempo,
		longKm:     longKm,
		wednesday:  wednesday,
		sunday:     sunday,
		friday:     remaining,
	}
}

func (w week) isRaceWeek() bool {
	return w.num == w.total
}

func (w week) intervalReps() int {
	return min(6+int(w.progress*4), 10)
}

// dayType is the classification a day would have before trimming
func (w week) dayType(d time.Weekday) DayType {
	switch d {
	case time.Monday:
		return DayRest
	case time.Tuesday:
		if w.sessions >= 2 {
			return DayQuality
		}
		return DayEasy
	case time.Wednesday:
		if w.wednesday > 0 {
			return DayEasy
		}
		return DayRest
	case time.Thursday:
		if w.sessions >= 1 {
			return DayQuality
		}
		return DayEasy
	case time.Friday:
		if w.friday > 0 {
			return DayEasy
		}
		return DayRest
	case time.Saturday:
		if w.isRaceWeek() {
			return DayEasy
		}
		return DayLong
	default:
		if w.isRaceWeek() {
			return DayQuality
		}
		if w.sunday > 0 {
			return DayRecovery
		}
		return DayRest
	}
}

// restDays picks which days are downgraded to rest to fit the training-day budget
func (w week) restDays(trainingDays int) map[time.Weekday]bool {
	active := 0
	for _, d := range weekdays {
		if w.dayType(d).Active() {
			active++
		}
	}

	priority := trimPriority
	if w.isRaceWeek() {
		priority = raceTrimPriority
	}

	rest := make(map[time.Weekday]bool)
	for _, d := range priority {
		if active <= trainingDays {
			break
		}
		if w.dayType(d).Active() {
			rest[d] = true
			active--
		}
	}
	return rest
}

// day renders the planned workout for d
func (w week) day(d time.Weekday) TrainingDay {
	easy := EasyPace(w.pace)
	t := w.dayType(d)

	switch d {
	case time.Monday:
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Rest or Cross-Training",
			Description: "Active recovery - light yoga, swimming, or complete rest",
			Type:        t,
		}

	case time.Tuesday:
		if t == DayQuality {
			pace := IntervalPace(w.pace)
			return TrainingDay{
				Day:         d.String(),
				Workout:     "Interval Training",
				Description: fmt.Sprintf("%dx400m at %s with 90s recovery jog, plus warm-up and cool-down", w.intervalReps(), pace),
				Type:        t,
				Pace:        pace,
				Distance:    kmLabel(w.intervalKm),
			}
		}
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Strides + Drills",
			Description: fmt.Sprintf("Easy running at %s, then 4-6 x 20s relaxed strides and running drills", easy),
			Type:        t,
			Pace:        easy,
			Distance:    "3-4 km easy + strides",
		}

	case time.Wednesday:
		if t == DayRest {
			return TrainingDay{
				Day:         d.String(),
				Workout:     "Rest",
				Description: "Optional rest - take the day off or do light mobility work",
				Type:        t,
				Distance:    "Optional rest",
			}
		}
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Easy Run",
			Description: fmt.Sprintf("Conversational Zone 2 run at %s", easy),
			Type:        t,
			Pace:        easy,
			Distance:    kmLabel(w.wednesday),
		}

	case time.Thursday:
		if t == DayQuality {
			pace := TempoPace(w.pace)
			return TrainingDay{
				Day:         d.String(),
				Workout:     "Tempo / Threshold Run",
				Description: fmt.Sprintf("Sustained threshold effort at %s for %d km", pace, w.tempoKm),
				Type:        t,
				Pace:        pace,
				Distance:    kmLabel(w.tempoKm),
			}
		}
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Easy Run",
			Description: fmt.Sprintf("Steady Zone 2 run at %s", easy),
			Type:        t,
			Pace:        easy,
			Distance:    kmLabel(max(4, round(float64(w.mileage)*0.2))),
		}

	case time.Friday:
		if t == DayRest {
			return TrainingDay{
				Day:         d.String(),
				Workout:     "Rest",
				Description: "Complete rest before the long run",
				Type:        t,
				Distance:    "Rest",
			}
		}
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Easy Run (optional)",
			Description: fmt.Sprintf("Optional short shakeout at %s", easy),
			Type:        t,
			Pace:        easy,
			Distance:    kmLabel(w.friday),
		}

	case time.Saturday:
		if w.isRaceWeek() {
			return TrainingDay{
				Day:         d.String(),
				Workout:     "Pre-Race Shakeout",
				Description: "Short, easy 2-3 km jog with a few strides",
				Type:        t,
				Pace:        EasyPace(w.targetPace),
				Distance:    "2-3 km",
			}
		}
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Long Zone 2 Run",
			Description: fmt.Sprintf("Build aerobic endurance at %s - keep it conversational", easy),
			Type:        t,
			Pace:        easy,
			Distance:    kmLabel(w.longKm),
		}

	default:
		if w.isRaceWeek() {
			target := FormatPace(w.targetPace)
			return TrainingDay{
				Day:         d.String(),
				Workout:     raceDayPrefix + w.info.Name,
				Description: fmt.Sprintf("Target pace: %s - Go get your PR!", target),
				Type:        t,
				Pace:        target,
				Distance:    FormatKm(w.info.Km),
			}
		}
		if t == DayRest {
			return TrainingDay{
				Day:         d.String(),
				Workout:     "Rest",
				Description: "Rest and recover from the long run",
				Type:        t,
				Distance:    "Rest",
			}
		}
		recovery := FormatPace(offsetPace(w.pace, recoveryOffset))
		return TrainingDay{
			Day:         d.String(),
			Workout:     "Recovery Run",
			Description: fmt.Sprintf("Very easy pace at %s", recovery),
			Type:        t,
			Pace:        recovery,
			Distance:    kmLabel(w.sunday),
		}
	}
}

// restDay is a day given up to fit the training-day budget
func restDay(d time.Weekday, trainingDays int) TrainingDay {
	return TrainingDay{
		Day:         d.String(),
		Workout:     "Rest",
		Description: fmt.Sprintf("Rest day to fit your %d-day training week", trainingDays),
		Type:        DayRest,
	}
}

func kmLabel(km int) string {
	return fmt.Sprintf("%d km", km)
}

// GenerateWeeklyPlan builds one week of the plan. Paces must already be normalized.
// Each week depends only on its arguments, never on other weeks.
func GenerateWeeklyPlan(weekNum, totalWeeks int, distance RaceDistance, currentPace, targetPace Pace, trainingDays int) TrainingWeek {
	w := newWeek(weekNum, totalWeeks, distance, currentPace, targetPace, trainingDays)
	rest := w.restDays(trainingDays)

	days := make([]TrainingDay, 0, len(weekdays))
	for _, d := range weekdays {
		if rest[d] {
			days = append(days, restDay(d, trainingDays))
			continue
		}
		days = append(days, w.day(d))
	}

	return TrainingWeek{
		Week:         weekNum,
		Phase:        w.phase,
		Days:         days,
		TotalMileage: kmLabel(w.mileage),
		MileageKm:    w.mileage,
	}
}
