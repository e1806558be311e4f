package event

import (
	"reflect"
	"sort"

	"tridemo/internal/logging"
)

// Subscriber receives dispatched events. OnEvent runs synchronously on the
// posting goroutine and must not panic; implementations handle their own
// failures. Subscribers are keyed by identity, so they must be comparable
// (in practice, pointers); Subscribe ignores any that are not.
type Subscriber interface {
	OnEvent(Event)
}

// Dispatcher is a synchronous publish/subscribe hub. It holds non-owning
// references to its subscribers and is not safe for concurrent use: all
// calls happen on the thread that runs the window loop.
type Dispatcher struct {
	subs map[Subscriber]uint64
	seq  uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs: make(map[Subscriber]uint64),
	}
}

// Subscribe adds s. Subscribing an already present subscriber is a no-op,
// as is subscribing nil or a value that cannot be keyed by identity.
func (d *Dispatcher) Subscribe(s Subscriber) {
	if !keyable(s) {
		logging.Logger().Warn("dispatcher: ignoring subscriber without identity", "type", reflect.TypeOf(s))
		return
	}
	if _, ok := d.subs[s]; ok {
		return
	}
	d.seq++
	d.subs[s] = d.seq
}

// Unsubscribe removes s if present.
func (d *Dispatcher) Unsubscribe(s Subscriber) {
	if keyable(s) {
		delete(d.subs, s)
	}
}

// keyable reports whether s can be used as a map key without panicking.
// Comparable structs holding interface fields with unhashable dynamic
// values are not detected.
func keyable(s Subscriber) bool {
	return s != nil && reflect.TypeOf(s).Comparable()
}

// Len returns the number of current subscribers.
func (d *Dispatcher) Len() int { return len(d.subs) }

// PostEvent delivers e to every subscriber present at the time of the call,
// in subscription order. The set is snapshotted first: a subscriber that
// subscribes or unsubscribes during delivery only affects later posts.
func (d *Dispatcher) PostEvent(e Event) {
	for _, s := range d.snapshot() {
		s.OnEvent(e)
	}
}

func (d *Dispatcher) snapshot() []Subscriber {
	if len(d.subs) == 0 {
		return nil
	}
	out := make([]Subscriber, 0, len(d.subs))
	for s := range d.subs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return d.subs[out[i]] < d.subs[out[j]] })
	return out
}
