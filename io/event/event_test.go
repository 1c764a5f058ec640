// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

type testEvent int

func (testEvent) ImplementsEvent() {}

func TestSubscribersOrder(t *testing.T) {
	var s Subscribers
	var got []int
	s.Subscribe(func(e Event) { got = append(got, int(e.(testEvent))) })
	s.Subscribe(func(e Event) { got = append(got, 10*int(e.(testEvent))) })
	s.Emit(testEvent(1))
	s.Emit(testEvent(2))
	want := []int{1, 10, 2, 20}
	if len(got) != len(want) {
		t.Fatalf("got %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, expected %v", got, want)
		}
	}
}

func TestSubscribersCancel(t *testing.T) {
	var s Subscribers
	n := 0
	cancel := s.Subscribe(func(Event) { n++ })
	s.Emit(testEvent(0))
	cancel()
	cancel()
	s.Emit(testEvent(0))
	if n != 1 {
		t.Errorf("handler called %d times, expected 1", n)
	}
	if s.Len() != 0 {
		t.Errorf("got %d handlers after cancel, expected 0", s.Len())
	}
}

func TestSubscribersCancelDuringEmit(t *testing.T) {
	var s Subscribers
	calls := 0
	var cancelSecond func()
	s.Subscribe(func(Event) {
		calls++
		cancelSecond()
	})
	cancelSecond = s.Subscribe(func(Event) { calls++ })
	// The snapshot taken by Emit still includes the second handler.
	s.Emit(testEvent(0))
	if calls != 2 {
		t.Fatalf("got %d calls, expected 2", calls)
	}
	s.Emit(testEvent(0))
	if calls != 3 {
		t.Errorf("got %d calls, expected 3", calls)
	}
}

func TestSubscribeNil(t *testing.T) {
	var s Subscribers
	cancel := s.Subscribe(nil)
	cancel()
	s.Emit(testEvent(0))
	if s.Len() != 0 {
		t.Errorf("nil handler was subscribed")
	}
}
