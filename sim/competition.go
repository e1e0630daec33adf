// sim/competition.go
package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Competition is the core engine. It holds the competitor table and the
// competition duration, and after Run keeps the full-precision event log
// that Winner queries.
type Competition struct {
	competitors map[string]RateFunc
	duration    float64 // competition length in seconds

	// events is the authoritative unrounded log, populated by Run and kept
	// for Winner. Callers only ever see rounded copies.
	events []Event
}

// NewCompetition creates a competition over the given competitor table.
// The table and rate functions are stored as-is and treated as read-only.
// Names must be distinct; they are the tie-break key in the event log.
func NewCompetition(competitors map[string]RateFunc, duration float64) *Competition {
	return &Competition{
		competitors: competitors,
		duration:    duration,
	}
}

// Run simulates the competition and returns the complete event log, sorted
// by (elapsed time, name) with every numeric field rounded to three decimal
// places. Each competitor contributes one event per whole hot dog finished
// before the bell plus exactly one terminal event at the bell.
//
// Run fails if any queried rate function output is non-positive or NaN;
// the terminal fraction is undefined for such rates.
func (c *Competition) Run() ([]Event, error) {
	names := make([]string, 0, len(c.competitors))
	for name := range c.competitors {
		names = append(names, name)
	}
	// Fixed evaluation order keeps error surfacing deterministic; the final
	// sort makes it unobservable in the log itself.
	sort.Strings(names)

	elapsed := make(map[string]float64, len(names))
	finished := make(map[string]bool, len(names))

	c.events = c.events[:0]
	eating := len(names)
	for cnt := 0; eating > 0; cnt++ {
		for _, name := range names {
			if finished[name] {
				continue
			}
			rate := c.competitors[name]
			current := rate(cnt)
			next := rate(cnt + 1)
			if err := checkRate(name, cnt, current); err != nil {
				return nil, err
			}
			if err := checkRate(name, cnt+1, next); err != nil {
				return nil, err
			}

			elapsed[name] += current
			// A whole hot dog only counts if it went down before the bell.
			// The lookahead below guarantees this for every hot dog after
			// the first, so the guard only bites on a competitor whose very
			// first hot dog outlasts the whole competition.
			if elapsed[name] <= c.duration {
				c.events = append(c.events, Event{
					ElapsedTime:  elapsed[name],
					Name:         name,
					HotDogsEaten: float64(cnt + 1),
				})
				logrus.Debugf("%s finished hot dog %d at %.3fs", name, cnt+1, elapsed[name])
			}

			remaining := c.duration - elapsed[name]
			if remaining-next < 0 {
				finished[name] = true
				eating--
				total := roundHalfEven(float64(cnt+1)+remaining/next, fractionPrecision)
				c.events = append(c.events, Event{
					ElapsedTime:  c.duration,
					Name:         name,
					HotDogsEaten: total,
				})
				logrus.Debugf("%s out of time with %.2f hot dogs eaten", name, total)
			}
		}
	}

	sort.Slice(c.events, func(i, j int) bool { return c.events[i].Less(c.events[j]) })

	rounded := make([]Event, len(c.events))
	for i, ev := range c.events {
		rounded[i] = ev.Rounded()
	}
	return rounded, nil
}

// Winner returns the name on the maximum event of the unrounded log under
// the Event total order. Every terminal event shares the competition
// duration as its elapsed time, so the rule reduces to the lexicographically
// greatest competitor name rather than the highest hot dog count.
//
// Winner fails until Run has recorded at least one event.
func (c *Competition) Winner() (string, error) {
	if len(c.events) == 0 {
		return "", fmt.Errorf("no events recorded: run the competition first")
	}
	maxEv := c.events[0]
	for _, ev := range c.events[1:] {
		if maxEv.Less(ev) {
			maxEv = ev
		}
	}
	return maxEv.Name, nil
}

func checkRate(name string, n int, seconds float64) error {
	if math.IsNaN(seconds) || seconds <= 0 {
		return fmt.Errorf("rate function for %q returned non-positive duration %v for hot dog %d", name, seconds, n)
	}
	return nil
}
