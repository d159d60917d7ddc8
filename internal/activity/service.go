package activity

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/briangreenhill/ftracker/internal/training"
)

var ErrNotFound = errors.New("training not found")

// Migrate creates the trainings table if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS trainings (
        id TEXT PRIMARY KEY,
        code TEXT NOT NULL,
        training_type TEXT NOT NULL,
        fields BLOB,
        fields_hash TEXT UNIQUE,
        duration REAL,
        distance REAL,
        speed REAL,
        calories REAL,
        created_at TIMESTAMP)`)
	return err
}

type Service struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewService(db *sql.DB, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// Compute reads a sensor package and returns its summary without storing it.
func (a *Service) Compute(code string, fields []float64) (training.InfoMessage, error) {
	if err := training.CheckFinite(fields...); err != nil {
		recordRejected(err)
		return training.InfoMessage{}, err
	}

	t, err := training.Read(code, fields)
	if err != nil {
		recordRejected(err)
		return training.InfoMessage{}, err
	}

	info, err := t.ShowTrainingInfo()
	if err == nil {
		err = training.CheckFinite(info.Duration, info.Distance, info.Speed, info.Calories)
	}
	if err != nil {
		recordRejected(err)
		return training.InfoMessage{}, err
	}

	recordComputed(code)
	return info, nil
}

// Add computes and stores a sensor package. Adding the same package twice
// replaces the earlier row in a single statement, so concurrent adds of one
// package leave exactly one row.
func (a *Service) Add(ctx context.Context, code string, fields []float64) (Activity, error) {
	info, err := a.Compute(code, fields)
	if err != nil {
		return Activity{}, err
	}

	var buffer bytes.Buffer
	enc := gob.NewEncoder(&buffer)
	if err := enc.Encode(fields); err != nil {
		return Activity{}, err
	}

	sha := sha256.Sum256(append([]byte(code+":"), buffer.Bytes()...))
	hash := hex.EncodeToString(sha[:])

	activity := Activity{
		ID:           uuid.NewString(),
		Code:         code,
		TrainingType: info.TrainingType,
		Fields:       fields,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Created:      time.Now().UTC(),
	}

	res, err := a.db.ExecContext(ctx, `
    INSERT INTO trainings
    (id,
    code,
    training_type,
    fields,
    fields_hash,
    duration,
    distance,
    speed,
    calories,
    created_at)
    VALUES
    (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(fields_hash) DO UPDATE SET
    id = excluded.id,
    created_at = excluded.created_at`,
		activity.ID,
		activity.Code,
		activity.TrainingType,
		buffer.Bytes(),
		hash,
		activity.Duration,
		activity.Distance,
		activity.Speed,
		activity.Calories,
		activity.Created,
	)
	if err != nil {
		return Activity{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Activity{}, err
	}

	if affected != 1 {
		return Activity{}, fmt.Errorf("expected 1 row to be affected, got %d", affected)
	}

	a.logger.Debug("Stored training", slog.String("id", activity.ID), slog.String("code", code))
	return activity, nil
}

const selectTrainings = `SELECT id, code, training_type, fields, duration, distance, speed, calories, created_at FROM trainings`

func (a *Service) Get(ctx context.Context) ([]Activity, error) {
	rows, err := a.db.QueryContext(ctx, selectTrainings+" ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

func (a *Service) GetByID(ctx context.Context, id string) (Activity, error) {
	row := a.db.QueryRowContext(ctx, selectTrainings+" WHERE id = ?", id)
	activity, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Activity{}, ErrNotFound
	}
	return activity, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(s scanner) (Activity, error) {
	activity := Activity{}
	var fieldsVal []byte
	if err := s.Scan(&activity.ID, &activity.Code, &activity.TrainingType, &fieldsVal,
		&activity.Duration, &activity.Distance, &activity.Speed, &activity.Calories, &activity.Created); err != nil {
		return Activity{}, err
	}

	dec := gob.NewDecoder(bytes.NewBuffer(fieldsVal))
	if err := dec.Decode(&activity.Fields); err != nil {
		return Activity{}, fmt.Errorf("decode fields of %s: %w", activity.ID, err)
	}

	return activity, nil
}
