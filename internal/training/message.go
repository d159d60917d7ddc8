package training

import "fmt"

// InfoMessage is the computed summary of a training.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func (t Training) ShowTrainingInfo() (InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return InfoMessage{}, err
	}
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}

	return InfoMessage{
		TrainingType: t.Kind.String(),
		Duration:     t.Duration,
		Distance:     t.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}
