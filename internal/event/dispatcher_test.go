package event

import (
	"math/rand"
	"testing"
)

type recorder struct {
	name string
	got  []Event
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r)
	d.Subscribe(r)
	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
	d.PostEvent(Paint())
	if len(r.got) != 1 {
		t.Errorf("delivered %d times, want 1", len(r.got))
	}
}

func TestUnsubscribeAbsentIsNoop(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Unsubscribe(r)
	d.Subscribe(r)
	d.Unsubscribe(r)
	d.Unsubscribe(r)
	if d.Len() != 0 {
		t.Fatalf("Len = %d, want 0", d.Len())
	}
	d.PostEvent(Paint())
	if len(r.got) != 0 {
		t.Errorf("unsubscribed recorder got %d events", len(r.got))
	}
}

func TestPostEventWithoutSubscribers(t *testing.T) {
	NewDispatcher().PostEvent(Resize(1, 1))
}

func TestPostEventDeliversPayloadUnchanged(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r)

	want := []Event{
		Resize(800, 600),
		Paint(),
		Mouse(ButtonDown, 10, 20, true),
		Mouse(Move, -5, 7, true),
		Mouse(ButtonUp, 3, 4, false),
		WindowCreated(),
		WindowClosed(),
	}
	for _, e := range want {
		d.PostEvent(e)
	}
	if len(r.got) != len(want) {
		t.Fatalf("got %d events, want %d", len(r.got), len(want))
	}
	for i := range want {
		if r.got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, r.got[i], want[i])
		}
	}
}

func TestPostEventOrderIsSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	a := &recorder{name: "a", log: &order}
	b := &recorder{name: "b", log: &order}
	c := &recorder{name: "c", log: &order}
	d.Subscribe(b)
	d.Subscribe(a)
	d.Subscribe(c)
	d.Subscribe(b)

	for i := 0; i < 5; i++ {
		order = order[:0]
		d.PostEvent(Paint())
		if len(order) != 3 || order[0] != "b" || order[1] != "a" || order[2] != "c" {
			t.Fatalf("order = %v, want [b a c]", order)
		}
	}
}

// selfRemover unsubscribes itself and subscribes late while handling an event.
type selfRemover struct {
	d    *Dispatcher
	late *recorder
	n    int
}

func (s *selfRemover) OnEvent(Event) {
	s.n++
	s.d.Unsubscribe(s)
	s.d.Subscribe(s.late)
}

func TestMutationDuringDispatchAffectsLaterPostsOnly(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	s := &selfRemover{d: d, late: late}
	d.Subscribe(s)

	d.PostEvent(Paint())
	if s.n != 1 {
		t.Fatalf("self remover called %d times, want 1", s.n)
	}
	if len(late.got) != 0 {
		t.Fatalf("late subscriber received the in-flight event")
	}

	d.PostEvent(Paint())
	if s.n != 1 {
		t.Errorf("removed subscriber called again")
	}
	if len(late.got) != 1 {
		t.Errorf("late subscriber got %d events, want 1", len(late.got))
	}
}

func TestPostEventMatchesSubscribedSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewDispatcher()
	subs := make([]*recorder, 6)
	for i := range subs {
		subs[i] = &recorder{}
	}
	member := make(map[*recorder]bool)

	for step := 0; step < 500; step++ {
		r := subs[rng.Intn(len(subs))]
		switch rng.Intn(3) {
		case 0:
			d.Subscribe(r)
			member[r] = true
		case 1:
			d.Unsubscribe(r)
			delete(member, r)
		default:
			before := make(map[*recorder]int, len(subs))
			for _, s := range subs {
				before[s] = len(s.got)
			}
			d.PostEvent(Mouse(Move, step, step, false))
			for _, s := range subs {
				delta := len(s.got) - before[s]
				want := 0
				if member[s] {
					want = 1
				}
				if delta != want {
					t.Fatalf("step %d: subscriber delivered %d, want %d", step, delta, want)
				}
			}
		}
		if d.Len() != len(member) {
			t.Fatalf("step %d: Len = %d, want %d", step, d.Len(), len(member))
		}
	}
}

type sliceSubscriber struct {
	got []Event
}

func (s sliceSubscriber) OnEvent(Event) {}

func TestSubscribeIgnoresUnhashableSubscriber(t *testing.T) {
	d := NewDispatcher()
	d.Subscribe(sliceSubscriber{})
	d.Subscribe(nil)
	if d.Len() != 0 {
		t.Fatalf("Len = %d, want 0", d.Len())
	}
	d.Unsubscribe(sliceSubscriber{})
	d.Unsubscribe(nil)

	r := &recorder{}
	d.Subscribe(r)
	d.PostEvent(Paint())
	if len(r.got) != 1 {
		t.Errorf("delivered %d events, want 1", len(r.got))
	}
}
