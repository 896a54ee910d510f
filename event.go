package impulse

import (
	"math"

	"github.com/akmonengine/impulse/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	OBJECT_HIT EventType = iota
	OBJECT_REST
	OBJECT_MOTION
)

// Velocity below which an object counts as at rest; straightening zeroes
// true rest exactly, the margin only covers un-straightened mutations
const restThreshold = 0.0001

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// HitEvent - a point query matched an object
type HitEvent struct {
	Object *actor.PhysicalObject
	Point  mgl64.Vec3
}

func (e HitEvent) Type() EventType { return OBJECT_HIT }

// RestEvent - an object came to rest
type RestEvent struct {
	Object *actor.PhysicalObject
}

func (e RestEvent) Type() EventType { return OBJECT_REST }

// MotionEvent - an object at rest started moving again
type MotionEvent struct {
	Object *actor.PhysicalObject
}

func (e MotionEvent) Type() EventType { return OBJECT_MOTION }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Rest tracking for Rest/Motion detection
	restStates map[*actor.PhysicalObject]bool
}

func NewEvents() Events {
	return Events{
		listeners:  make(map[EventType][]EventListener),
		buffer:     make([]Event, 0, 256),
		restStates: make(map[*actor.PhysicalObject]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emitHit buffers a hit event (called from QueryPoint)
func (e *Events) emitHit(object *actor.PhysicalObject, point mgl64.Vec3) {
	e.buffer = append(e.buffer, HitEvent{Object: object, Point: point})
}

// isAtRest reports whether both velocity matrices are inert
func isAtRest(object *actor.PhysicalObject) bool {
	if actor.TranslationVector(object.GetVelocityMatrix()).Len() > restThreshold {
		return false
	}

	angular := object.GetAngularVelocityMatrix()
	identity := mgl64.Ident4()
	for i := range angular {
		if math.Abs(angular[i]-identity[i]) > restThreshold {
			return false
		}
	}

	return true
}

// processRestEvents compares the tracked rest state of every object to the
// current one and buffers Rest/Motion transitions. The first observation
// of an object only records its state
func (e *Events) processRestEvents(objects []*actor.PhysicalObject) {
	if e.restStates == nil {
		e.restStates = make(map[*actor.PhysicalObject]bool)
	}

	for _, object := range objects {
		atRest := isAtRest(object)

		trackedState, exists := e.restStates[object]
		if !exists {
			e.restStates[object] = atRest
			continue
		}

		if !trackedState && atRest {
			e.buffer = append(e.buffer, RestEvent{Object: object})
			e.restStates[object] = true
		} else if trackedState && !atRest {
			e.buffer = append(e.buffer, MotionEvent{Object: object})
			e.restStates[object] = false
		}
	}
}

// flush sends all buffered events and clears the buffer
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
