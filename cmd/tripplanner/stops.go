package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tripplanner "github.com/transport-nsw/tripplanner-go"
	"github.com/transport-nsw/tripplanner-go/models"
)

var stopsCmd = &cobra.Command{
	Use:   "stops <query>",
	Short: "Search for stops, POIs and addresses by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locationType, _ := cmd.Flags().GetString("type")
		maxResults, _ := cmd.Flags().GetInt("max")

		client, err := newClient()
		if err != nil {
			return err
		}

		locations, err := client.FindStop(cmd.Context(), args[0], &tripplanner.StopSearchOptions{
			Type:       models.LocationType(locationType),
			MaxResults: maxResults,
		})
		if err != nil {
			return err
		}

		for _, loc := range locations {
			line := fmt.Sprintf("%-12s %s (%s)", loc.ID, loc.Name, loc.Type)
			if len(loc.Modes) > 0 {
				modes := make([]string, len(loc.Modes))
				for i, m := range loc.Modes {
					modes[i] = models.TransportModeFromClass(m).DisplayName()
				}
				line += "  " + strings.Join(modes, ", ")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	stopsCmd.Flags().String("type", "", "filter by location type (stop, poi, singlehouse, ...)")
	stopsCmd.Flags().Int("max", 10, "maximum number of results")
}
