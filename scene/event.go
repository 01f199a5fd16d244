package scene

import (
	"github.com/braheezy/orbit-lights/aim"
	"github.com/braheezy/orbit-lights/camera"
)

// Kind says which fields of an Event are meaningful.
type Kind int

const (
	SelectCamera Kind = iota
	ToggleDay
	ToggleBlinn
	ToggleMotion
	ToggleSpotFollow
	// Move and Aim are held keys, sampled once per frame.
	Move
	Aim
	CursorPos
	Scroll
	Resize
	Quit
)

func (k Kind) String() string {
	switch k {
	case SelectCamera:
		return "select-camera"
	case ToggleDay:
		return "toggle-day"
	case ToggleBlinn:
		return "toggle-blinn"
	case ToggleMotion:
		return "toggle-motion"
	case ToggleSpotFollow:
		return "toggle-spot-follow"
	case Move:
		return "move"
	case Aim:
		return "aim"
	case CursorPos:
		return "cursor"
	case Scroll:
		return "scroll"
	case Resize:
		return "resize"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Event is one input, as recorded by a window callback.
type Event struct {
	Kind Kind

	Camera    camera.ID
	Movement  camera.Movement
	Direction aim.Direction

	// X and Y carry cursor positions and scroll offsets.
	X, Y float64

	Width, Height int
}

// Queue collects events between frames. Window callbacks run on the render
// thread during PollEvents, so it needs no locking.
type Queue struct {
	events []Event
}

func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the queued events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}

func (q *Queue) Len() int {
	return len(q.events)
}
