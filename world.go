package particlesim

import (
	"math"

	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

const (
	DEFAULT_WORKERS     = 1
	DEFAULT_TIME_STEP   = 0.01
	DEFAULT_RESTITUTION = 0.7
)

var (
	ErrInvalidRegion      = errors.New("region dimensions must be positive")
	ErrInvalidTimeStep    = errors.New("time step must be positive")
	ErrInvalidRestitution = errors.New("restitution must be within [0, 1]")
	ErrInvalidParticle    = errors.New("particle mass and radius must be positive")
	ErrInvalidObstacle    = errors.New("obstacle side must be positive")
	ErrInvalidDuration    = errors.New("duration must not be negative")
	ErrRunning            = errors.New("world is already running")
	ErrCompleted          = errors.New("world has already completed its run")
)

type RunState uint8

const (
	NOT_STARTED RunState = iota
	RUNNING
	COMPLETED
)

func (s RunState) String() string {
	switch s {
	case NOT_STARTED:
		return "not started"
	case RUNNING:
		return "running"
	case COMPLETED:
		return "completed"
	default:
		return "unknown"
	}
}

type World struct {
	Region actor.Region
	// Arena of all particles ever created, indexed by identity.
	// Merged particles stay here, inactive.
	Particles []*actor.Particle
	Obstacles []*actor.Obstacle

	// Simulated time, in seconds
	Time        float64
	Dt          float64
	Restitution float64 // 0= no rebound, 1= perfect restitution, obstacles only
	Workers     int

	Events Events
	Logger Logger

	state  RunState
	nextID int
}

type Option func(w *World) error

func WithTimeStep(dt float64) Option {
	return func(w *World) error {
		if !(dt > 0) {
			return errors.Wrapf(ErrInvalidTimeStep, "got %v", dt)
		}
		w.Dt = dt
		return nil
	}
}

func WithRestitution(restitution float64) Option {
	return func(w *World) error {
		if !(restitution >= 0 && restitution <= 1) {
			return errors.Wrapf(ErrInvalidRestitution, "got %v", restitution)
		}
		w.Restitution = restitution
		return nil
	}
}

// WithWorkers sets the number of goroutines used by the obstacle, wall and integration passes.
// The output does not depend on it.
func WithWorkers(workers int) Option {
	return func(w *World) error {
		w.Workers = max(DEFAULT_WORKERS, workers)
		return nil
	}
}

func WithLogger(logger Logger) Option {
	return func(w *World) error {
		if logger != nil {
			w.Logger = logger
		}
		return nil
	}
}

// NewWorld creates an empty world inside region
func NewWorld(region actor.Region, opts ...Option) (*World, error) {
	if !(region.Width > 0 && region.Height > 0) {
		return nil, errors.Wrapf(ErrInvalidRegion, "got %v x %v", region.Width, region.Height)
	}

	w := &World{
		Region:      region,
		Dt:          DEFAULT_TIME_STEP,
		Restitution: DEFAULT_RESTITUTION,
		Workers:     DEFAULT_WORKERS,
		Events:      NewEvents(),
		Logger:      NewNoOpLogger(),
	}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func (w *World) State() RunState {
	return w.state
}

// AddParticle creates a particle with the next sequential identity
func (w *World) AddParticle(position, velocity mgl64.Vec2, mass, radius float64) (*actor.Particle, error) {
	if w.state != NOT_STARTED {
		return nil, ErrRunning
	}
	if !(mass > 0 && radius > 0) {
		return nil, errors.Wrapf(ErrInvalidParticle, "mass %v, radius %v", mass, radius)
	}

	particle := actor.NewParticle(w.nextID, position, velocity, mass, radius)
	w.nextID++
	w.Particles = append(w.Particles, particle)

	return particle, nil
}

func (w *World) AddObstacle(center mgl64.Vec2, side float64) (*actor.Obstacle, error) {
	if w.state != NOT_STARTED {
		return nil, ErrRunning
	}
	if !(side > 0) {
		return nil, errors.Wrapf(ErrInvalidObstacle, "side %v", side)
	}

	obstacle := actor.NewObstacle(center, side)
	w.Obstacles = append(w.Obstacles, obstacle)

	return obstacle, nil
}

// ActiveParticles returns the particles not absorbed yet, in identity order
func (w *World) ActiveParticles() []*actor.Particle {
	active := make([]*actor.Particle, 0, len(w.Particles))
	for _, particle := range w.Particles {
		if particle.Active {
			active = append(active, particle)
		}
	}

	return active
}

// StepCount returns the number of steps Run executes for totalTime: ceil(totalTime/dt)+1.
// Durations that are negative, not finite, or too long to count in an int are rejected.
func StepCount(totalTime, dt float64) (int, error) {
	if !(totalTime >= 0) || math.IsInf(totalTime, 1) {
		return 0, errors.Wrapf(ErrInvalidDuration, "got %v", totalTime)
	}

	steps := math.Ceil(totalTime / dt)
	if math.IsInf(steps, 1) || steps >= math.MaxInt {
		return 0, errors.Wrapf(ErrInvalidDuration, "%v at dt %v needs more than %d steps", totalTime, dt, math.MaxInt)
	}

	return int(steps) + 1, nil
}

// Run executes StepCount(totalTime, Dt) steps, reporting progress at every 10%
func (w *World) Run(totalTime float64) error {
	if w.state == COMPLETED {
		return ErrCompleted
	}
	steps, err := StepCount(totalTime, w.Dt)
	if err != nil {
		return err
	}
	reportEvery := max(1, steps/10)

	w.Logger.Infof("running %d steps (duration %.4f, dt %.4f)", steps, totalTime, w.Dt)
	for i := 0; i < steps; i++ {
		if i%reportEvery == 0 {
			w.Logger.Infof("step %d/%d (%d%%) t=%.4f", i, steps, i*100/steps, w.Time)
		}
		if err := w.Step(); err != nil {
			return err
		}
	}
	w.state = COMPLETED

	w.Logger.Infof("run completed at t=%.4f, %d/%d particles active", w.Time, len(w.ActiveParticles()), len(w.Particles))

	return nil
}

// Step advances the world by Dt.
// The passes always run in this order: positions are recorded, particles merge,
// obstacles and walls are resolved, then every particle is integrated.
// A completed world is left untouched and ErrCompleted is returned.
func (w *World) Step() error {
	if w.state == COMPLETED {
		return ErrCompleted
	}
	if w.state == NOT_STARTED {
		w.state = RUNNING
	}
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	w.recordPositions()

	w.collideParticles()
	w.collideObstacles()
	w.collideWalls()

	w.integrate()

	w.Time += w.Dt
	w.Events.flush()

	return nil
}

func (w *World) recordPositions() {
	for _, particle := range w.Particles {
		if !particle.Active {
			continue
		}

		w.Events.emit(PositionEvent{
			At:       w.Time,
			ID:       particle.ID(),
			Position: particle.Position,
			Radius:   particle.Radius,
			Mass:     particle.Mass,
		})
	}
}

func (w *World) integrate() {
	task(w.Workers, w.Particles, func(particle *actor.Particle) {
		particle.Advance(w.Dt)
	})
}

// Describe logs the world configuration
func (w *World) Describe() {
	w.Logger.Infof("%s", w.Region)
	w.Logger.Infof("dt: %.4f, restitution: %.4f, workers: %d", w.Dt, w.Restitution, w.Workers)
	w.Logger.Infof("obstacles: %d", len(w.Obstacles))
	for _, obstacle := range w.Obstacles {
		w.Logger.Infof("  %s", obstacle)
	}
	w.Logger.Infof("particles: %d", len(w.Particles))
	for _, particle := range w.Particles {
		w.Logger.Infof("  %s", particle)
	}
}
