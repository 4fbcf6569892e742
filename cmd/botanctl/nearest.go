package main

import (
	"fmt"
	"os"
	"time"

	"github.com/korjavin/botan/pkg/fetch"
	"github.com/korjavin/botan/pkg/schedule"
	"github.com/korjavin/botan/pkg/timetable"
	"github.com/spf13/cobra"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "Fetch the timetable page and print the nearest day",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if url == "" {
			url = os.Getenv("SCHEDULE_URL")
		}
		if url == "" {
			return fmt.Errorf("--url or SCHEDULE_URL is required")
		}

		bells, breaks, err := bellsFromFlags(cmd)
		if err != nil {
			return err
		}

		svc := schedule.New(
			fetch.NewClient(timeout),
			url,
			timetable.NewScanner(timetable.DefaultLayout, bells),
			timetable.NewFormatter(timetable.DefaultGreetings, breaks, nil),
		)

		fmt.Fprintln(cmd.OutOrStdout(), svc.Nearest(cmd.Context()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nearestCmd)

	nearestCmd.Flags().StringP("url", "u", "", "Timetable page URL (default: $SCHEDULE_URL)")
	nearestCmd.Flags().Duration("timeout", 15*time.Second, "HTTP timeout")
}
