package particlesim

import (
	"github.com/akmonengine/particlesim/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	POSITION EventType = iota
	PARTICLE_COLLISION
	OBSTACLE_COLLISION
	WALL_COLLISION
)

type EventType uint8

// String returns the tag used for the event type in the event log
func (t EventType) String() string {
	switch t {
	case POSITION:
		return "POSITION"
	case PARTICLE_COLLISION:
		return "PARTICLE_COLLISION"
	case OBSTACLE_COLLISION:
		return "OBSTACLE_COLLISION"
	case WALL_COLLISION:
		return "WALL_COLLISION"
	default:
		return "UNKNOWN"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
	Time() float64
}

// PositionEvent is a snapshot of an active particle at the start of a step
type PositionEvent struct {
	At       float64
	ID       int
	Position mgl64.Vec2
	Radius   float64
	Mass     float64
}

func (e PositionEvent) Type() EventType { return POSITION }
func (e PositionEvent) Time() float64   { return e.At }

// ParticleCollisionEvent is emitted before BodyB is merged into BodyA
type ParticleCollisionEvent struct {
	At    float64
	BodyA int
	BodyB int
}

func (e ParticleCollisionEvent) Type() EventType { return PARTICLE_COLLISION }
func (e ParticleCollisionEvent) Time() float64   { return e.At }

type ObstacleCollisionEvent struct {
	At       float64
	Body     int
	Obstacle int
	Normal   mgl64.Vec2
}

func (e ObstacleCollisionEvent) Type() EventType { return OBSTACLE_COLLISION }
func (e ObstacleCollisionEvent) Time() float64   { return e.At }

// WallCollisionEvent is emitted once per particle and step, whatever the number of walls hit
type WallCollisionEvent struct {
	At    float64
	Body  int
	Walls constraint.Wall
}

func (e WallCollisionEvent) Type() EventType { return WALL_COLLISION }
func (e WallCollisionEvent) Time() float64   { return e.At }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 256),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// SubscribeAll adds the listener to every event type
func (e *Events) SubscribeAll(listener EventListener) {
	for _, eventType := range []EventType{POSITION, PARTICLE_COLLISION, OBSTACLE_COLLISION, WALL_COLLISION} {
		e.Subscribe(eventType, listener)
	}
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events in emission order and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
