package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tripplanner "github.com/transport-nsw/tripplanner-go"
	"github.com/transport-nsw/tripplanner-go/models"
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby <latitude> <longitude>",
	Short: "Find stops and POIs near a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		radius, _ := cmd.Flags().GetInt("radius")
		opal, _ := cmd.Flags().GetBool("opal")

		var lat, lon float64
		if _, err := fmt.Sscanf(args[0], "%f", &lat); err != nil {
			return fmt.Errorf("invalid latitude %q", args[0])
		}
		if _, err := fmt.Sscanf(args[1], "%f", &lon); err != nil {
			return fmt.Errorf("invalid longitude %q", args[1])
		}
		centre := models.Coordinate{Latitude: lat, Longitude: lon}

		client, err := newClient()
		if err != nil {
			return err
		}

		var locations []models.Location
		if opal {
			locations, err = client.FindOpalResellers(cmd.Context(), centre, radius)
		} else {
			locations, err = client.FindNearby(cmd.Context(), centre, &tripplanner.NearbyOptions{
				RadiusM: radius,
			})
		}
		if err != nil {
			return err
		}

		for _, loc := range locations {
			if loc.Distance != nil {
				fmt.Printf("%5dm  %s\n", *loc.Distance, loc.Name)
			} else {
				fmt.Printf("    ?   %s\n", loc.Name)
			}
		}
		return nil
	},
}

func init() {
	nearbyCmd.Flags().Int("radius", 0, "search radius in metres (default 500, 1000 for --opal)")
	nearbyCmd.Flags().Bool("opal", false, "find Opal ticket resellers instead of stops")
}
