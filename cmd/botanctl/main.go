package main

import (
	"fmt"
	"os"

	"github.com/korjavin/botan/pkg/config"
	"github.com/korjavin/botan/pkg/logger"
	"github.com/korjavin/botan/pkg/timetable"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "botanctl",
	Short: "Check what the schedule bot would answer",
	Long: `botanctl fetches or reads a timetable page and prints the nearest day
exactly as the bot would send it. Use it to verify the page layout after the site changes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger.SetLevel(logger.LevelDebug)
		} else {
			logger.SetLevel(logger.LevelError)
		}
		return nil
	},
}

// bellsFromFlags returns the bell schedule named by --bells or the built-in one
func bellsFromFlags(cmd *cobra.Command) (timetable.BellSchedule, []timetable.BreakRule, error) {
	path, _ := cmd.Flags().GetString("bells")
	if path == "" {
		return timetable.DefaultBells, timetable.DefaultBreaks, nil
	}
	bells, err := config.LoadBellSchedule(path)
	if err != nil {
		return nil, nil, err
	}
	return bells.Slots, bells.Breaks, nil
}

func init() {
	rootCmd.PersistentFlags().String("bells", "", "YAML bell schedule file (default: built-in schedule)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
