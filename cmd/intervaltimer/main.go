// Package main is the interval timer binary: a desktop window by default and
// a terminal UI under the tui subcommand.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	appName  = "IntervalTimer"
	appID    = "com.intervaltimer.app"
	appTitle = "Interval Timer"
)

var flagValues timerFlags

var rootCmd = &cobra.Command{
	Use:   "intervaltimer",
	Short: "Countdown, alert and pause in a repeating loop",
	Long: `Run an interval training timer.

The timer counts down from the countdown length, switches to an alert look
when the alert threshold is reached, shows the pause message for the pause
length and then starts the next repetition. It repeats until stopped.

Values given as flags override the values saved from the last run.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGUI,
}

func init() {
	flagValues.register(rootCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
