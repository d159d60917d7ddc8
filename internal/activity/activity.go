package activity

import (
	"time"

	"github.com/briangreenhill/ftracker/internal/training"
)

// Activity is a stored training together with its computed summary.
type Activity struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	TrainingType string    `json:"training_type"`
	Fields       []float64 `json:"fields"`
	Duration     float64   `json:"duration"`
	Distance     float64   `json:"distance"`
	Speed        float64   `json:"speed"`
	Calories     float64   `json:"calories"`
	Created      time.Time `json:"created"`
}

func (a Activity) Info() training.InfoMessage {
	return training.InfoMessage{
		TrainingType: a.TrainingType,
		Duration:     a.Duration,
		Distance:     a.Distance,
		Speed:        a.Speed,
		Calories:     a.Calories,
	}
}

func (a Activity) Message() string {
	return a.Info().Message()
}
