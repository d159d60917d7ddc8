package training

// Kind tags which variant a Training is.
type Kind int

const (
	Running Kind = iota + 1
	SportsWalking
	Swimming
)

const (
	mInKm  = 1000
	minInH = 60
)

// running
const (
	runningLenStep                     = 0.65
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// sports walking
const (
	walkingLenStep                  = 0.65
	walkingKmhInMsec                = 0.278
	walkingCmInM                    = 100
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// swimming
const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func (k Kind) String() string {
	switch k {
	case Running:
		return "Running"
	case SportsWalking:
		return "SportsWalking"
	case Swimming:
		return "Swimming"
	}
	return "Unknown"
}

// Code returns the three-letter sensor code for the kind.
func (k Kind) Code() string {
	switch k {
	case Running:
		return CodeRunning
	case SportsWalking:
		return CodeWalking
	case Swimming:
		return CodeSwimming
	}
	return ""
}

// LenStep returns the distance covered per step or stroke in meters.
func (k Kind) LenStep() float64 {
	switch k {
	case SportsWalking:
		return walkingLenStep
	case Swimming:
		return swimmingLenStep
	}
	return runningLenStep
}

// Training is a single workout read from a sensor package. Height is only
// set for sports walking, PoolLength and PoolCount only for swimming.
type Training struct {
	Kind     Kind
	Action   int
	Duration float64
	Weight   float64

	Height float64

	PoolLength float64
	PoolCount  int
}

func NewRunning(action int, duration, weight float64) Training {
	return Training{
		Kind:     Running,
		Action:   action,
		Duration: duration,
		Weight:   weight,
	}
}

func NewSportsWalking(action int, duration, weight, height float64) Training {
	return Training{
		Kind:     SportsWalking,
		Action:   action,
		Duration: duration,
		Weight:   weight,
		Height:   height,
	}
}

func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) Training {
	return Training{
		Kind:       Swimming,
		Action:     action,
		Duration:   duration,
		Weight:     weight,
		PoolLength: poolLength,
		PoolCount:  poolCount,
	}
}
