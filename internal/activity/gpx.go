package activity

import (
	"errors"
	"fmt"
	"math"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/briangreenhill/ftracker/internal/training"
)

// FromGPX turns a recorded track into a sensor package. The step count is
// estimated from the moving distance. A nonzero height yields a sports
// walking package, otherwise a running one.
func FromGPX(data []byte, weight, height float64) (training.Package, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return training.Package{}, fmt.Errorf("parse gpx: %w", err)
	}

	if len(g.Tracks) == 0 {
		return training.Package{}, errors.New("gpx has no tracks")
	}

	moving := g.MovingData()
	hours := moving.MovingTime / 3600

	if height > 0 {
		action := math.Round(moving.MovingDistance / training.SportsWalking.LenStep())
		return training.Package{
			Code:   training.CodeWalking,
			Fields: []float64{action, hours, weight, height},
		}, nil
	}

	action := math.Round(moving.MovingDistance / training.Running.LenStep())
	return training.Package{
		Code:   training.CodeRunning,
		Fields: []float64{action, hours, weight},
	}, nil
}
