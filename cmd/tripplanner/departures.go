package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tripplanner "github.com/transport-nsw/tripplanner-go"
)

var departuresCmd = &cobra.Command{
	Use:   "departures <stop-id>",
	Short: "List upcoming departures from a stop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, _ := cmd.Flags().GetString("platform")

		client, err := newClient()
		if err != nil {
			return err
		}

		events, err := client.Departures(cmd.Context(), args[0], &tripplanner.DepartureOptions{
			PlatformID: platform,
		})
		if err != nil {
			return err
		}

		for _, event := range events {
			marker := " "
			if event.IsRealtime() {
				marker = "*"
			}
			when := "--:--"
			if dep := event.DepartureTime(); dep != nil {
				when = dep.Format("15:04")
			}
			mins := "   ?"
			if m, ok := event.MinutesUntilDeparture(); ok {
				mins = fmt.Sprintf("%3dm", m)
			}
			fmt.Printf("%s %s %s  %-8s -> %s\n",
				marker, mins, when, event.Transportation.Number, event.Transportation.DestinationName)
		}
		return nil
	},
}

func init() {
	departuresCmd.Flags().String("platform", "", "narrow results to a platform ID")
}
