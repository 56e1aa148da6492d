package canvas

import (
	"fmt"
	"strings"
	"sync"
)

// EventKind names the pointer/gesture events the controller reacts to.
// Hosts without native gesture events translate their own input into these
// five kinds; the controller never sees platform event objects.
type EventKind string

const (
	EventContextMenu EventKind = "contextmenu"
	EventWheel       EventKind = "wheel"
	EventTouchEnd    EventKind = "touchend"
	EventTouchMove   EventKind = "touchmove"
	EventClick       EventKind = "click"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventContextMenu, EventWheel, EventTouchEnd, EventTouchMove, EventClick:
		return true
	default:
		return false
	}
}

func ParseEventKind(value string) (EventKind, error) {
	kind := EventKind(strings.ToLower(strings.TrimSpace(value)))
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown event kind %q", value)
	}
	return kind, nil
}

// Event is one platform-neutral pointer/gesture occurrence.
type Event struct {
	Kind             EventKind
	Touches          int
	Modifier         bool
	DefaultPrevented bool
	DeltaX           float64
	DeltaY           float64
	X                float64
	Y                float64

	handled bool
}

// SetHandled stops propagation to listeners registered earlier.
func (e *Event) SetHandled() {
	e.handled = true
}

func (e *Event) IsHandled() bool {
	return e.handled
}

type listenerEntry struct {
	id int
	fn func(*Event)
}

// ListenerSet registers callbacks per event kind. Dispatch calls listeners
// newest-first and stops once the event is handled, so an overriding
// listener registered later can shadow the built-in wiring.
type ListenerSet struct {
	mu     sync.Mutex
	nextID int
	lists  map[EventKind][]listenerEntry
}

func NewListenerSet() *ListenerSet {
	return &ListenerSet{lists: make(map[EventKind][]listenerEntry)}
}

// On registers a listener and returns its unsubscribe function.
func (ls *ListenerSet) On(kind EventKind, fn func(*Event)) func() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.nextID++
	id := ls.nextID
	ls.lists[kind] = append(ls.lists[kind], listenerEntry{id: id, fn: fn})

	return func() {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		entries := ls.lists[kind]
		for i, entry := range entries {
			if entry.id == id {
				ls.lists[kind] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (ls *ListenerSet) Dispatch(ev *Event) {
	ls.mu.Lock()
	entries := make([]listenerEntry, len(ls.lists[ev.Kind]))
	copy(entries, ls.lists[ev.Kind])
	ls.mu.Unlock()

	for i := len(entries) - 1; i >= 0; i-- {
		if ev.IsHandled() {
			return
		}
		entries[i].fn(ev)
	}
}

func (ls *ListenerSet) Count(kind EventKind) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.lists[kind])
}
