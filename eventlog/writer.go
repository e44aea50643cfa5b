package eventlog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/particlesim"
	"github.com/akmonengine/particlesim/actor"
	"github.com/pkg/errors"
)

// Header describes the world a log was recorded from
type Header struct {
	Region      actor.Region
	Dt          float64
	Restitution float64
	Obstacles   []actor.Obstacle
}

// HeaderOf captures the static configuration of world
func HeaderOf(world *particlesim.World) Header {
	header := Header{
		Region:      world.Region,
		Dt:          world.Dt,
		Restitution: world.Restitution,
		Obstacles:   make([]actor.Obstacle, 0, len(world.Obstacles)),
	}
	for _, obstacle := range world.Obstacles {
		header.Obstacles = append(header.Obstacles, *obstacle)
	}

	return header
}

// Writer appends events to a plain text log, one event per line.
// The first write error is kept and returned by Err and Close; later writes are dropped.
type Writer struct {
	buf    *bufio.Writer
	closer io.Closer
	err    error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Create opens the log file at path, truncating it
func Create(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating event log %q", path)
	}

	w := NewWriter(file)
	w.closer = file

	return w, nil
}

// Attach writes the header of world and subscribes the writer to all its events
func (w *Writer) Attach(world *particlesim.World) error {
	if err := w.WriteHeader(HeaderOf(world)); err != nil {
		return err
	}
	world.Events.SubscribeAll(w.Write)

	return nil
}

func (w *Writer) WriteHeader(header Header) error {
	w.printf("# Particle collision simulation\n")
	w.printf("# Format: time,event_type,particle_id,...\n")
	w.printf("# %s: %.4f x %.4f\n", tagRegion, header.Region.Width, header.Region.Height)
	w.printf("# %s: %.4f\n", tagDt, header.Dt)
	w.printf("# %s: %.4f\n", tagRestitution, header.Restitution)
	for _, obstacle := range header.Obstacles {
		w.printf("# %s: %.4f,%.4f,%.4f\n", tagObstacle, obstacle.Center.X(), obstacle.Center.Y(), obstacle.Side)
	}

	return w.err
}

// Write formats a single event. It has the EventListener signature.
func (w *Writer) Write(event particlesim.Event) {
	switch e := event.(type) {
	case particlesim.PositionEvent:
		w.printf("%.4f,%s,%d,%.4f,%.4f,%.4f,%.4f\n",
			e.At, e.Type(), e.ID, e.Position.X(), e.Position.Y(), e.Radius, e.Mass)
	case particlesim.ParticleCollisionEvent:
		w.printf("%.4f,%s,%d,%d\n", e.At, e.Type(), e.BodyA, e.BodyB)
	case particlesim.ObstacleCollisionEvent:
		w.printf("%.4f,%s,%d\n", e.At, e.Type(), e.Body)
	case particlesim.WallCollisionEvent:
		w.printf("%.4f,%s,%d\n", e.At, e.Type(), e.Body)
	}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.buf, format, args...); err != nil {
		w.err = errors.Wrap(err, "writing event log")
	}
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.buf.Flush(); err != nil {
		w.err = errors.Wrap(err, "flushing event log")
	}

	return w.err
}

// Close flushes the log, and closes the underlying file when the writer was made by Create
func (w *Writer) Close() error {
	err := w.Flush()
	if w.closer != nil {
		if closeErr := w.closer.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "closing event log")
		}
		w.closer = nil
	}

	return err
}
