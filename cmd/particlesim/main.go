package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/particlesim"
	"github.com/akmonengine/particlesim/eventlog"
	"github.com/akmonengine/particlesim/scene"
)

func main() {
	var (
		sceneFile = flag.String("scene", "", "path to scene JSON file (default: built-in demo scene)")
		output    = flag.String("out", "simulation.txt", "path of the event log to write")
		duration  = flag.Float64("duration", -1, "simulated duration in seconds, overrides the scene")
		workers   = flag.Int("workers", particlesim.DEFAULT_WORKERS, "goroutines used by the obstacle, wall and integration passes")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger := NewLogger(*logLevel)

	if err := run(*sceneFile, *output, *duration, *workers, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneFile, output string, duration float64, workers int, logger *Logger) error {
	cfg := scene.Default()
	if sceneFile != "" {
		loaded, err := scene.Load(sceneFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if duration >= 0 {
		cfg.Duration = duration
	}

	world, err := cfg.Build(particlesim.WithWorkers(workers), particlesim.WithLogger(logger))
	if err != nil {
		return err
	}

	// The run does not start without a log to write to
	writer, err := eventlog.Create(output)
	if err != nil {
		return err
	}
	logger.Infof("event log: %s", output)

	if err := writer.Attach(world); err != nil {
		writer.Close()
		return err
	}

	world.Describe()

	if err := world.Run(cfg.Duration); err != nil {
		writer.Close()
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}
	logger.Infof("simulation finished, replay with: particlereplay -log %s", output)

	return nil
}
