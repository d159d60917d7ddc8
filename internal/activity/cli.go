package activity

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/training"
)

var errMissingFlag = errors.New("missing required flag")

type CLI struct {
	writer          io.Writer
	activityService *Service
	args            []string
	logger          *slog.Logger
	cfg             config.Config
}

func NewCLI(w io.Writer, logger *slog.Logger, activityService *Service, cfg config.Config, args []string) *CLI {
	return &CLI{
		writer:          w,
		activityService: activityService,
		args:            args,
		logger:          logger,
		cfg:             cfg,
	}
}

func (c *CLI) Run(ctx context.Context) error {
	if len(c.args) == 0 {
		c.Usage()
		return nil
	}

	switch c.args[0] {
	case "show":
		return c.Show()
	case "add":
		return c.AddTraining(ctx)
	case "list":
		return c.List(ctx)
	case "import":
		return c.ImportGPX(ctx)
	case "api":
		return c.RunAPI(ctx)
	default:
		c.Usage()
	}
	return nil
}

func (c *CLI) Usage() {
	fmt.Fprintf(c.writer, "Usage: ftracker [command] [flags]\n--help show this message\n\n"+
		"\tshow [--code RUN --data 15000,1,75]\n"+
		"\tadd --code RUN --data 15000,1,75\n"+
		"\tlist\n"+
		"\timport --gpx run.gpx --weight 75 [--height 180]\n"+
		"\tapi\n")
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.writer)
	fs.Usage = c.Usage
	return fs
}

func (c *CLI) packageFlags(name string) (*flag.FlagSet, *string, *string) {
	fs := c.flagSet(name)
	code := fs.String("code", "", "training code: SWM, RUN or WLK")
	data := fs.String("data", "", "comma separated sensor values")
	return fs, code, data
}

// Show prints summaries without storing them. Without flags it prints the
// sample packages.
func (c *CLI) Show() error {
	fs, code, data := c.packageFlags("show")
	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if *code == "" && *data != "" {
		fs.Usage()
		return fmt.Errorf("%w: --code", errMissingFlag)
	}

	packages := training.Packages()
	if *code != "" {
		fields, err := training.ParseFields(*data)
		if err != nil {
			return err
		}
		packages = []training.Package{{Code: *code, Fields: fields}}
	}

	for _, p := range packages {
		info, err := c.activityService.Compute(p.Code, p.Fields)
		if err != nil {
			return fmt.Errorf("%s %v: %w", p.Code, p.Fields, err)
		}
		fmt.Fprintln(c.writer, info.Message())
	}
	return nil
}

func (c *CLI) AddTraining(ctx context.Context) error {
	fs, code, data := c.packageFlags("add")
	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if *code == "" {
		fs.Usage()
		return fmt.Errorf("%w: --code", errMissingFlag)
	}

	fields, err := training.ParseFields(*data)
	if err != nil {
		return err
	}

	activity, err := c.activityService.Add(ctx, *code, fields)
	if err != nil {
		return err
	}

	c.logger.Info("Training added", slog.String("id", activity.ID), slog.String("code", activity.Code))
	fmt.Fprintln(c.writer, activity.Message())
	return nil
}

func (c *CLI) List(ctx context.Context) error {
	activities, err := c.activityService.Get(ctx)
	if err != nil {
		return err
	}

	for _, activity := range activities {
		fmt.Fprintf(c.writer, "%s %s\n", activity.ID, activity.Message())
	}
	return nil
}

func (c *CLI) ImportGPX(ctx context.Context) error {
	fs := c.flagSet("import")
	var gpxFile string
	var weight, height float64
	fs.StringVar(&gpxFile, "gpx", "", "path to gpx file")
	fs.Float64Var(&weight, "weight", 0, "body weight in kg, required")
	fs.Float64Var(&height, "height", 0, "height in cm, imports as sports walking when set")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if gpxFile == "" {
		fs.Usage()
		return fmt.Errorf("%w: --gpx", errMissingFlag)
	}

	if !(weight > 0) {
		fs.Usage()
		return fmt.Errorf("%w: --weight must be positive", errMissingFlag)
	}

	c.logger.Info("Importing gpx file", slog.String("gpx_file", gpxFile))

	gpxBytes, err := readGPXFile(gpxFile)
	if err != nil {
		return err
	}

	p, err := FromGPX(gpxBytes, weight, height)
	if err != nil {
		return err
	}

	activity, err := c.activityService.Add(ctx, p.Code, p.Fields)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.writer, activity.Message())
	return nil
}

func (c *CLI) RunAPI(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	server := &http.Server{
		Addr:    c.cfg.HTTPAddress,
		Handler: NewAPI(c.logger, c.activityService),
	}

	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.logger.Error("Error shutting down server", slog.Any("error", err))
		}
	}()

	c.logger.Info("Starting server", slog.String("addr", c.cfg.HTTPAddress))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		c.logger.Error("Error starting server", slog.Any("error", err))
		cancel()
		return err
	}

	return nil
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	return os.ReadFile(gpxFile)
}
