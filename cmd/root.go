package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/eating-sim/eating-sim/sim"
)

var (
	// CLI flags for the run subcommand
	scenarioName  string  // Scenario preset to simulate
	scenariosFile string  // Optional YAML file of scenario presets
	duration      float64 // Override for the scenario duration (seconds)
	logLevel      string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "eating-sim",
	Short: "Deterministic simulator for timed eating competitions",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an eating competition simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scenarios := builtinScenarios
		if scenariosFile != "" {
			cfg, err := LoadScenarios(scenariosFile)
			if err != nil {
				logrus.Fatalf("Unable to load scenarios: %v", err)
			}
			scenarios = cfg.Scenarios
		}
		scenario, ok := scenarios[scenarioName]
		if !ok {
			logrus.Fatalf("Unknown scenario %q", scenarioName)
		}
		if duration > 0 {
			scenario.Duration = duration
		}

		competitors, err := BuildCompetitors(scenario)
		if err != nil {
			logrus.Fatalf("Invalid scenario %q: %v", scenarioName, err)
		}

		// Log configuration
		logrus.Infof("Starting scenario %q with %d competitors, duration=%.0fs",
			scenarioName, len(competitors), scenario.Duration)

		// Initialize and run the competition
		c := sim.NewCompetition(competitors, scenario.Duration)
		events, err := c.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		for _, ev := range events {
			logrus.Debugf(">> t=%.3fs %s total=%.3f", ev.ElapsedTime, ev.Name, ev.HotDogsEaten)
		}

		sim.NewStandings(events, scenario.Duration).Print()

		winner, err := c.Winner()
		if err != nil {
			logrus.Fatalf("No winner: %v", err)
		}
		fmt.Printf("Winner               : %s\n", winner)

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioName, "scenario", "nathans-2017", "Scenario preset to simulate")
	runCmd.Flags().StringVar(&scenariosFile, "scenarios-file", "", "YAML file of scenario presets (defaults to built-ins)")
	runCmd.Flags().Float64Var(&duration, "duration", 0, "Override competition duration in seconds (0 = scenario value)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
