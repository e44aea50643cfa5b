package scene

import (
	"encoding/json"
	"os"

	"github.com/akmonengine/particlesim"
	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var ErrInvalidScene = errors.New("invalid scene")

type ObstacleConfig struct {
	Center [2]float64 `json:"center"`
	Side   float64    `json:"side"`
}

type ParticleConfig struct {
	Position [2]float64 `json:"position"`
	Velocity [2]float64 `json:"velocity"`
	Mass     float64    `json:"mass"`
	Radius   float64    `json:"radius"`
}

// Config is the JSON description of a run
type Config struct {
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	Dt          float64          `json:"dt,omitempty"`
	Restitution *float64         `json:"restitution,omitempty"`
	Duration    float64          `json:"duration"`
	Obstacles   []ObstacleConfig `json:"obstacles"`
	Particles   []ParticleConfig `json:"particles"`
}

// Default is the demo scene: four obstacles at the quarter points of a 100x100 region,
// and six particles heading towards the middle, run for 10 seconds.
func Default() Config {
	restitution := particlesim.DEFAULT_RESTITUTION

	return Config{
		Width:       100,
		Height:      100,
		Dt:          particlesim.DEFAULT_TIME_STEP,
		Restitution: &restitution,
		Duration:    10,
		Obstacles: []ObstacleConfig{
			{Center: [2]float64{25, 25}, Side: 8},
			{Center: [2]float64{75, 25}, Side: 8},
			{Center: [2]float64{25, 75}, Side: 8},
			{Center: [2]float64{75, 75}, Side: 8},
		},
		Particles: []ParticleConfig{
			{Position: [2]float64{15, 15}, Velocity: [2]float64{30, 20}, Mass: 1.0, Radius: 3.0},
			{Position: [2]float64{85, 15}, Velocity: [2]float64{-25, 25}, Mass: 1.5, Radius: 3.5},
			{Position: [2]float64{15, 85}, Velocity: [2]float64{35, -30}, Mass: 1.2, Radius: 3.2},
			{Position: [2]float64{85, 85}, Velocity: [2]float64{-20, -28}, Mass: 0.8, Radius: 2.8},
			{Position: [2]float64{50, 50}, Velocity: [2]float64{15, -15}, Mass: 2.0, Radius: 4.0},
			{Position: [2]float64{50, 10}, Velocity: [2]float64{0, 40}, Mass: 1.0, Radius: 3.0},
		},
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading scene file %q", path)
	}

	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing scene JSON")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values World would reject, and reports the offending entry
func (c Config) Validate() error {
	if !(c.Width > 0 && c.Height > 0) {
		return errors.Wrapf(ErrInvalidScene, "region %v x %v", c.Width, c.Height)
	}
	if c.Dt < 0 {
		return errors.Wrapf(ErrInvalidScene, "dt %v", c.Dt)
	}
	if c.Restitution != nil && !(*c.Restitution >= 0 && *c.Restitution <= 1) {
		return errors.Wrapf(ErrInvalidScene, "restitution %v", *c.Restitution)
	}
	if c.Duration < 0 {
		return errors.Wrapf(ErrInvalidScene, "duration %v", c.Duration)
	}
	for i, o := range c.Obstacles {
		if !(o.Side > 0) {
			return errors.Wrapf(ErrInvalidScene, "obstacle %d: side %v", i, o.Side)
		}
	}
	for i, p := range c.Particles {
		if !(p.Mass > 0 && p.Radius > 0) {
			return errors.Wrapf(ErrInvalidScene, "particle %d: mass %v, radius %v", i, p.Mass, p.Radius)
		}
	}

	return nil
}

// Build creates a world populated with the scene's obstacles and particles
func (c Config) Build(opts ...particlesim.Option) (*particlesim.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sceneOpts := make([]particlesim.Option, 0, 2+len(opts))
	if c.Dt > 0 {
		sceneOpts = append(sceneOpts, particlesim.WithTimeStep(c.Dt))
	}
	if c.Restitution != nil {
		sceneOpts = append(sceneOpts, particlesim.WithRestitution(*c.Restitution))
	}

	world, err := particlesim.NewWorld(actor.Region{Width: c.Width, Height: c.Height}, append(sceneOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	for _, o := range c.Obstacles {
		if _, err := world.AddObstacle(mgl64.Vec2(o.Center), o.Side); err != nil {
			return nil, err
		}
	}
	for _, p := range c.Particles {
		if _, err := world.AddParticle(mgl64.Vec2(p.Position), mgl64.Vec2(p.Velocity), p.Mass, p.Radius); err != nil {
			return nil, err
		}
	}

	return world, nil
}
