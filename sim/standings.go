// Aggregates a finished competition's event log into a final table
// for reporting.

package sim

import (
	"fmt"
	"sort"
)

// StandingLine is one competitor's final result.
type StandingLine struct {
	Name         string
	HotDogsEaten float64 // final cumulative total, fractional
}

// Standings ranks competitors by hot dogs eaten, most first, name ascending
// on ties. This is reporting only; Winner on the Competition follows the
// event-log order instead.
type Standings struct {
	Duration float64
	Lines    []StandingLine
}

// NewStandings aggregates an event log. Per competitor the log is
// non-decreasing in hot dogs eaten, so the last event seen carries the
// final total.
func NewStandings(events []Event, duration float64) *Standings {
	finals := make(map[string]float64, len(events))
	for _, ev := range events {
		finals[ev.Name] = ev.HotDogsEaten
	}

	lines := make([]StandingLine, 0, len(finals))
	for name, total := range finals {
		lines = append(lines, StandingLine{Name: name, HotDogsEaten: total})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].HotDogsEaten == lines[j].HotDogsEaten {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].HotDogsEaten > lines[j].HotDogsEaten
	})

	return &Standings{Duration: duration, Lines: lines}
}

// Print displays the final standings at the end of the simulation.
func (s *Standings) Print() {
	fmt.Println("=== Final Standings ===")
	fmt.Printf("Duration             : %.0f seconds\n", s.Duration)
	for i, line := range s.Lines {
		fmt.Printf("%d. %-20s %.3f hot dogs\n", i+1, line.Name, line.HotDogsEaten)
	}
}
