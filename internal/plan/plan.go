// Package plan generates multi-week running training plans.
//
// Everything here is a pure function of its arguments: no I/O, no shared
// mutable state, so plans can be generated concurrently without coordination.
package plan

import "fmt"

// GenerateTrainingPlan builds the full plan for a race distance.
//
// Both paces are normalized first. trainingDays is trusted as given; callers
// taking user input should pass it through ClampTrainingDays. distance must be
// one of the supported distances.
func GenerateTrainingPlan(distance RaceDistance, currentPace, targetPace Pace, trainingDays int) TrainingPlan {
	current := currentPace.Normalize()
	target := targetPace.Normalize()
	info := distance.mustInfo()

	weeks := make([]TrainingWeek, 0, info.Weeks)
	for i := 1; i <= info.Weeks; i++ {
		weeks = append(weeks, GenerateWeeklyPlan(i, info.Weeks, distance, current, target, trainingDays))
	}

	return TrainingPlan{
		Distance:     distance,
		CurrentPace:  current,
		TargetPace:   target,
		TrainingDays: trainingDays,
		Weeks:        weeks,
		Summary:      summarize(info, current, target, trainingDays),
	}
}

// TimeImprovement returns the projected race-time change in whole minutes.
// Positive means faster at target pace.
func TimeImprovement(info DistanceInfo, current, target Pace) int {
	paceImprovement := PaceToSeconds(current) - PaceToSeconds(target)
	return round(float64(paceImprovement) * info.Km / 60)
}

// ClampTrainingDays limits a requested weekly day count to the supported range
func ClampTrainingDays(days int) int {
	return clamp(days, MinTrainingDays, MaxTrainingDays)
}

func summarize(info DistanceInfo, current, target Pace, trainingDays int) string {
	improvement := TimeImprovement(info, current, target)

	var outcome string
	switch {
	case improvement > 0:
		outcome = fmt.Sprintf("That's a potential improvement of ~%d minutes on your %s time!", improvement, info.Name)
	case improvement < 0:
		outcome = fmt.Sprintf("This target would add roughly %d minutes to your %s time, so double-check that goal.", -improvement, info.Name)
	default:
		outcome = fmt.Sprintf("This keeps you steady at your current pace for the %s.", info.Name)
	}

	return fmt.Sprintf(
		"This %d-week plan takes you from %s to %s, training %d days/week. %s "+
			"Aim for about 80%% of your weekly mileage at easy/Zone 2 effort, with a controlled block of interval and tempo work.",
		info.Weeks, FormatPace(current), FormatPace(target), trainingDays, outcome,
	)
}
