package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/korjavin/botan/pkg/markup"
	"github.com/korjavin/botan/pkg/schedule"
	"github.com/korjavin/botan/pkg/timetable"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the nearest day of a saved UTF-8 timetable page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		bells, breaks, err := bellsFromFlags(cmd)
		if err != nil {
			return err
		}
		scanner := timetable.NewScanner(timetable.DefaultLayout, bells)

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open page: %w", err)
		}
		defer file.Close()

		if !asJSON {
			svc := schedule.New(nil, "", scanner, timetable.NewFormatter(timetable.DefaultGreetings, breaks, nil))
			fmt.Fprintln(cmd.OutOrStdout(), svc.Render(file))
			return nil
		}

		doc, err := markup.Parse(file)
		if err != nil {
			return err
		}
		day, err := scanner.Scan(doc)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(day)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("json", false, "Print the extracted day as JSON instead of the chat message")
}
