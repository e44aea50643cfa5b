package eventlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/akmonengine/particlesim"
	"github.com/akmonengine/particlesim/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

const (
	tagRegion      = "REGION"
	tagDt          = "DT"
	tagRestitution = "RESTITUTION"
	tagObstacle    = "OBSTACLE"
)

var ErrMalformed = errors.New("malformed event log")

// ParticleState is one POSITION line
type ParticleState struct {
	ID       int
	Position mgl64.Vec2
	Radius   float64
	Mass     float64
}

// Frame holds the positions recorded at the start of one step
type Frame struct {
	Time      float64
	Particles []ParticleState
}

type Collision struct {
	Time float64
	Type particlesim.EventType
	IDs  []int
}

// Recording is a parsed event log
type Recording struct {
	Header     Header
	Frames     []Frame
	Collisions []Collision
}

// ParticleCount returns the number of distinct particle identities seen in the log
func (r *Recording) ParticleCount() int {
	seen := make(map[int]struct{})
	for _, frame := range r.Frames {
		for _, p := range frame.Particles {
			seen[p.ID] = struct{}{}
		}
	}

	return len(seen)
}

// CollisionsBetween returns the collisions with from <= time < to
func (r *Recording) CollisionsBetween(from, to float64) []Collision {
	var collisions []Collision
	for _, c := range r.Collisions {
		if c.Time >= from && c.Time < to {
			collisions = append(collisions, c)
		}
	}

	return collisions
}

func (r *Recording) Summary() string {
	return fmt.Sprintf("%d particles, %d frames, %d collisions", r.ParticleCount(), len(r.Frames), len(r.Collisions))
}

func Open(path string) (*Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening event log %q", path)
	}
	defer file.Close()

	return Read(file)
}

// Read parses a log written by Writer.
// Unknown header comments and blank lines are skipped.
func Read(r io.Reader) (*Recording, error) {
	recording := &Recording{}
	scanner := bufio.NewScanner(r)

	lineNumber := 0
	lastTime := ""
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if err := readHeaderLine(&recording.Header, line); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 3 {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %q", lineNumber, line)
		}
		at, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "line %d: time %q", lineNumber, fields[0])
		}

		switch fields[1] {
		case particlesim.POSITION.String():
			state, err := readPosition(fields[2:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			if len(recording.Frames) == 0 || fields[0] != lastTime {
				recording.Frames = append(recording.Frames, Frame{Time: at})
				lastTime = fields[0]
			}
			frame := &recording.Frames[len(recording.Frames)-1]
			frame.Particles = append(frame.Particles, state)

		case particlesim.PARTICLE_COLLISION.String(),
			particlesim.OBSTACLE_COLLISION.String(),
			particlesim.WALL_COLLISION.String():
			collision, err := readCollision(at, fields[1], fields[2:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			recording.Collisions = append(recording.Collisions, collision)

		default:
			return nil, errors.Wrapf(ErrMalformed, "line %d: unknown event %q", lineNumber, fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading event log")
	}

	return recording, nil
}

func readHeaderLine(header *Header, line string) error {
	tag, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)

	switch tag {
	case tagRegion:
		width, height, ok := strings.Cut(value, "x")
		if !ok {
			return errors.Wrapf(ErrMalformed, "region %q", value)
		}
		values, err := parseFloats(width, height)
		if err != nil {
			return err
		}
		header.Region = actor.Region{Width: values[0], Height: values[1]}
	case tagDt:
		values, err := parseFloats(value)
		if err != nil {
			return err
		}
		header.Dt = values[0]
	case tagRestitution:
		values, err := parseFloats(value)
		if err != nil {
			return err
		}
		header.Restitution = values[0]
	case tagObstacle:
		values, err := parseFloats(strings.Split(value, ",")...)
		if err != nil {
			return err
		}
		if len(values) != 3 {
			return errors.Wrapf(ErrMalformed, "obstacle %q", value)
		}
		header.Obstacles = append(header.Obstacles, actor.Obstacle{
			Center: mgl64.Vec2{values[0], values[1]},
			Side:   values[2],
		})
	}

	return nil
}

func readPosition(fields []string) (ParticleState, error) {
	if len(fields) != 5 {
		return ParticleState{}, errors.Wrapf(ErrMalformed, "position has %d fields", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return ParticleState{}, errors.Wrapf(ErrMalformed, "particle id %q", fields[0])
	}
	values, err := parseFloats(fields[1:]...)
	if err != nil {
		return ParticleState{}, err
	}

	return ParticleState{
		ID:       id,
		Position: mgl64.Vec2{values[0], values[1]},
		Radius:   values[2],
		Mass:     values[3],
	}, nil
}

func readCollision(at float64, tag string, fields []string) (Collision, error) {
	collision := Collision{Time: at}
	want := 1
	switch tag {
	case particlesim.PARTICLE_COLLISION.String():
		collision.Type = particlesim.PARTICLE_COLLISION
		want = 2
	case particlesim.OBSTACLE_COLLISION.String():
		collision.Type = particlesim.OBSTACLE_COLLISION
	default:
		collision.Type = particlesim.WALL_COLLISION
	}
	if len(fields) != want {
		return Collision{}, errors.Wrapf(ErrMalformed, "%s has %d ids", tag, len(fields))
	}

	for _, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return Collision{}, errors.Wrapf(ErrMalformed, "particle id %q", field)
		}
		collision.IDs = append(collision.IDs, id)
	}

	return collision, nil
}

func parseFloats(fields ...string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "number %q", field)
		}
		values = append(values, value)
	}

	return values, nil
}
