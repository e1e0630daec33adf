package sim

import (
	"testing"
)

func TestEvent_Less_OrdersByElapsedTimeFirst(t *testing.T) {
	// GIVEN two events at different times, names in the opposite order
	early := Event{ElapsedTime: 1.0, Name: "Zed", HotDogsEaten: 1}
	late := Event{ElapsedTime: 2.0, Name: "Ann", HotDogsEaten: 1}

	// THEN elapsed time dominates the order
	if !early.Less(late) {
		t.Errorf("Less: %v should precede %v", early, late)
	}
	if late.Less(early) {
		t.Errorf("Less: %v should not precede %v", late, early)
	}
}

func TestEvent_Less_TiesBreakByName(t *testing.T) {
	// GIVEN two events at the same instant
	a := Event{ElapsedTime: 5.0, Name: "Alice", HotDogsEaten: 3}
	b := Event{ElapsedTime: 5.0, Name: "Bob", HotDogsEaten: 1}

	// THEN the lexicographically smaller name precedes
	if !a.Less(b) {
		t.Errorf("Less: %v should precede %v on name tie-break", a, b)
	}
	if b.Less(a) {
		t.Errorf("Less: %v should not precede %v", b, a)
	}
}

func TestEvent_Less_EqualEventsAreUnordered(t *testing.T) {
	// GIVEN two identical events
	ev := Event{ElapsedTime: 5.0, Name: "Alice", HotDogsEaten: 3}

	// THEN neither precedes the other
	if ev.Less(ev) {
		t.Errorf("Less: an event must not precede itself")
	}
}

func TestEvent_Rounded_ThreeDecimalsHalfEven(t *testing.T) {
	// GIVEN events whose fields sit exactly on a rounding tie
	cases := []struct {
		in   Event
		want Event
	}{
		// tie rounds to the even neighbor
		{Event{2.0005, "A", 1.2345}, Event{2.0, "A", 1.234}},
		{Event{2.0015, "A", 1.2355}, Event{2.002, "A", 1.236}},
		// plain truncation cases
		{Event{600.1234, "B", 52.3333}, Event{600.123, "B", 52.333}},
	}

	for _, c := range cases {
		// WHEN rounding to the log precision
		got := c.in.Rounded()

		// THEN both numeric fields are rounded half-to-even, name untouched
		if got != c.want {
			t.Errorf("Rounded(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEvent_Rounded_Idempotent(t *testing.T) {
	// GIVEN an already-rounded event
	ev := Event{ElapsedTime: 4.125, Name: "Alice", HotDogsEaten: 2.5}.Rounded()

	// WHEN rounding again
	again := ev.Rounded()

	// THEN nothing changes
	if again != ev {
		t.Errorf("Rounded twice: got %v, want %v", again, ev)
	}
}

func TestEvent_Rounded_IsPure(t *testing.T) {
	// GIVEN an event with unrounded fields
	ev := Event{ElapsedTime: 1.23456, Name: "Alice", HotDogsEaten: 0.98765}
	orig := ev

	// WHEN a rounded copy is produced
	_ = ev.Rounded()

	// THEN the input event is unchanged
	if ev != orig {
		t.Errorf("Rounded mutated its receiver: got %v, want %v", ev, orig)
	}
}
