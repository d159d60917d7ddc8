package training

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	return float64(t.Action) * t.Kind.LenStep() / mInKm
}

// MeanSpeed returns the average speed in km/h. Swimming derives it from the
// pool geometry, the other kinds from Distance.
func (t Training) MeanSpeed() (float64, error) {
	if t.Duration == 0 {
		return 0, &DivisionError{Kind: t.Kind, Field: "duration"}
	}

	switch t.Kind {
	case Swimming:
		return t.PoolLength * float64(t.PoolCount) / mInKm / t.Duration, nil
	default:
		return t.Distance() / t.Duration, nil
	}
}

// SpentCalories returns the calories burned during the training.
func (t Training) SpentCalories() (float64, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return 0, err
	}

	switch t.Kind {
	case Running:
		return runningCalories(speed, t.Weight, t.Duration), nil
	case SportsWalking:
		if t.Height == 0 {
			return 0, &DivisionError{Kind: t.Kind, Field: "height"}
		}
		return walkingCalories(speed, t.Weight, t.Height, t.Duration), nil
	case Swimming:
		return swimmingCalories(speed, t.Weight, t.Duration), nil
	}
	return 0, &InvalidActivityError{Code: t.Kind.Code(), Allowed: Codes()}
}

func runningCalories(speed, weight, duration float64) float64 {
	return (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) *
		weight / mInKm * (duration * minInH)
}

func walkingCalories(speed, weight, height, duration float64) float64 {
	ms := speed * walkingKmhInMsec
	return (walkingCaloriesWeightMultiplier*weight +
		(ms*ms/(height/walkingCmInM))*walkingSpeedHeightMultiplier*weight) *
		(duration * minInH)
}

func swimmingCalories(speed, weight, duration float64) float64 {
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight * duration
}
