package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tripplanner "github.com/transport-nsw/tripplanner-go"
)

var tripCmd = &cobra.Command{
	Use:   "trip <origin-stop-id> <destination-stop-id>",
	Short: "Plan a journey between two stops",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		arriveBy, _ := cmd.Flags().GetBool("arrive-by")
		wheelchair, _ := cmd.Flags().GetBool("wheelchair")

		client, err := newClient()
		if err != nil {
			return err
		}

		journeys, err := client.PlanTrip(cmd.Context(), args[0], args[1], &tripplanner.TripOptions{
			ArriveBy:   arriveBy,
			Wheelchair: wheelchair,
		})
		if err != nil {
			return err
		}

		for _, journey := range journeys {
			fmt.Printf("%s (%d min)\n", journey.Summary(), journey.TotalDuration()/60)
			if dep := journey.DepartureTime(); dep != nil {
				fmt.Printf("  depart %s\n", dep.Format("15:04"))
			}
			if arr := journey.ArrivalTime(); arr != nil {
				fmt.Printf("  arrive %s\n", arr.Format("15:04"))
			}
			if fare := journey.FareSummary(); fare != nil {
				fmt.Printf("  fare   $%.2f (%s)\n", fare.PriceTotal, fare.Status)
			}
			for _, leg := range journey.Legs {
				fmt.Printf("    %-10s %s -> %s\n",
					leg.Mode().DisplayName(), leg.Origin.Name, leg.Destination.Name)
			}
		}
		return nil
	},
}

func init() {
	tripCmd.Flags().Bool("arrive-by", false, "treat the search time as an arrival time")
	tripCmd.Flags().Bool("wheelchair", false, "only wheelchair accessible journeys")
}
