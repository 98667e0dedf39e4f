package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	tripplanner "github.com/transport-nsw/tripplanner-go"
	"github.com/transport-nsw/tripplanner-go/config"
	"github.com/transport-nsw/tripplanner-go/internal"
)

var rootCmd = &cobra.Command{
	Use:           "tripplanner",
	Short:         "Query the Transport for NSW Trip Planner APIs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newClient builds a client from the loaded configuration.
func newClient() (*tripplanner.Client, error) {
	if err := config.LoadAppConfig(); err != nil {
		return nil, err
	}
	internal.InitLogging(config.Config.Log.Level)

	opts := []tripplanner.Option{
		tripplanner.WithTimeout(time.Duration(config.Config.API.TimeoutSeconds) * time.Second),
		tripplanner.WithLogger(log.Logger),
	}
	if config.Config.API.BaseURL != "" {
		opts = append(opts, tripplanner.WithBaseURL(config.Config.API.BaseURL))
	}
	return tripplanner.New(config.Config.API.Key, opts...), nil
}

func main() {
	rootCmd.AddCommand(stopsCmd, tripCmd, departuresCmd, alertsCmd, nearbyCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
