package activity

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/training"
)

func runCLI(t *testing.T, svc *Service, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cli := NewCLI(&out, logger, svc, config.Config{}, args)
	err := cli.Run(context.Background())
	return out.String(), err
}

func TestCLIShowSamplePackages(t *testing.T) {
	out, err := runCLI(t, newTestService(t), "show")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
	}, "\n")+"\n", out)
}

func TestCLIShowSinglePackage(t *testing.T) {
	svc := newTestService(t)
	out, err := runCLI(t, svc, "show", "--code", "RUN", "--data", "15000,1,75")
	require.NoError(t, err)
	assert.Contains(t, out, "Потрачено ккал: 797.805.")

	activities, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestCLIShowInvalidCode(t *testing.T) {
	_, err := runCLI(t, newTestService(t), "show", "--code", "XYZ", "--data", "1,2,3")
	assert.ErrorIs(t, err, training.ErrInvalidActivity)
}

func TestCLIShowDataWithoutCode(t *testing.T) {
	out, err := runCLI(t, newTestService(t), "show", "--data", "1,2,3")
	assert.ErrorIs(t, err, errMissingFlag)
	assert.Contains(t, out, "Usage: ftracker")
	assert.NotContains(t, out, "Тип тренировки")
}

func TestCLIAddAndList(t *testing.T) {
	svc := newTestService(t)

	out, err := runCLI(t, svc, "add", "--code", "WLK", "--data", "9000,1,75,180")
	require.NoError(t, err)
	assert.Contains(t, out, "Тип тренировки: SportsWalking;")

	out, err = runCLI(t, svc, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "Потрачено ккал: 349.252."))
}

func TestCLIAddErrors(t *testing.T) {
	svc := newTestService(t)

	out, err := runCLI(t, svc, "add", "--data", "15000,1,75")
	assert.ErrorIs(t, err, errMissingFlag)
	assert.Contains(t, out, "Usage: ftracker")

	_, err = runCLI(t, svc, "add", "--code", "RUN", "--data", "15000,1")
	assert.ErrorIs(t, err, training.ErrArity)

	_, err = runCLI(t, svc, "add", "--code", "RUN", "--data", "15000,x,75")
	assert.Error(t, err)

	_, err = runCLI(t, svc, "add", "--code", "RUN", "--data", "15000,NaN,75")
	assert.ErrorIs(t, err, training.ErrNonFinite)

	out, err = runCLI(t, svc, "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCLIImportGPX(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "run.gpx")
	require.NoError(t, os.WriteFile(path, []byte(testGPX), 0o644))

	out, err := runCLI(t, svc, "import", "--gpx", path, "--weight", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "Тип тренировки: Running;")
	assert.Contains(t, out, "Длительность: 0.200 ч.;")

	_, err = runCLI(t, svc, "import", "--weight", "75")
	assert.ErrorIs(t, err, errMissingFlag)

	for _, weight := range []string{"0", "-75"} {
		_, err = runCLI(t, svc, "import", "--gpx", path, "--weight", weight)
		assert.ErrorIs(t, err, errMissingFlag, weight)
	}
	_, err = runCLI(t, svc, "import", "--gpx", path)
	assert.ErrorIs(t, err, errMissingFlag)

	activities, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Greater(t, activities[0].Calories, 0.0)

	_, err = runCLI(t, svc, "import", "--gpx", t.TempDir(), "--weight", "75")
	assert.EqualError(t, err, "gpx file is a directory")
}

func TestCLIUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"unknown"}} {
		out, err := runCLI(t, newTestService(t), args...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Usage: ftracker [command] [flags]"))
	}
}
