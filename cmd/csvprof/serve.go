package main

import (
	"github.com/spf13/cobra"

	"csvprof/adapters/api"
	"csvprof/app"
	"csvprof/internal"
	"csvprof/internal/config"
	"csvprof/internal/session"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the profiling HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "port to listen on (default from PORT env)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if cmd.Flags().Changed("port") {
		port = flagPort
	}

	logger := internal.NewDefaultLogger()
	svc := app.NewProcessService(session.NewStorage(), logger)
	server := api.NewServer(svc, cfg.ProcessOptions(), logger)
	return server.Start(port)
}
