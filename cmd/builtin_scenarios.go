package cmd

import (
	sim "github.com/eating-sim/eating-sim/sim"
)

// builtinScenarios are the presets available without a scenarios file.
// nathans-2017 models the 2017 Nathan's Famous final: Chestnut slowing
// exponentially from ~5s per hot dog, Cincotti linearly from 6s.
var builtinScenarios = map[string]Scenario{
	"nathans-2017": {
		Duration: 600,
		Competitors: []Competitor{
			{Name: "Joey Chestnut", Rate: sim.RateSpec{Kind: "exponential", Scale: 0.0344, Offset: 4}},
			{Name: "Carmen Cincotti", Rate: sim.RateSpec{Kind: "linear", Slope: 0.120, Intercept: 6}},
		},
	},
	"head-to-head": {
		Duration: 5,
		Competitors: []Competitor{
			{Name: "Alice", Rate: sim.RateSpec{Kind: "constant", Seconds: 1}},
			{Name: "Bob", Rate: sim.RateSpec{Kind: "constant", Seconds: 2}},
		},
	},
}
