package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tripplanner "github.com/transport-nsw/tripplanner-go"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Retrieve current service alerts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stopID, _ := cmd.Flags().GetString("stop")
		historical, _ := cmd.Flags().GetBool("historical")

		client, err := newClient()
		if err != nil {
			return err
		}

		alerts, err := client.Alerts(cmd.Context(), &tripplanner.AlertOptions{
			StopID:            stopID,
			IncludeHistorical: historical,
		})
		if err != nil {
			return err
		}

		for _, alert := range alerts {
			fmt.Println(alert.Subtitle)
			if alert.LastModification != nil {
				fmt.Printf("  updated %s\n", alert.LastModification.Format("2006-01-02 15:04"))
			}
			if alert.URL != "" {
				fmt.Printf("  %s\n", alert.URL)
			}
		}
		return nil
	},
}

func init() {
	alertsCmd.Flags().String("stop", "", "only alerts affecting this stop ID")
	alertsCmd.Flags().Bool("historical", false, "include alerts no longer current")
}
