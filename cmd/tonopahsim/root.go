package main

import (
	"context"
	"fmt"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/utils"
	"github.com/spf13/cobra"
)

// newRootCmd builds the tonopahsim command tree: a single "run"
// subcommand that drives a two-path simulation against the congestion
// package, standing in for the sockets and handshake this module
// deliberately leaves out (spec.md §1, Non-goals).
func newRootCmd() *cobra.Command {
	var configPath string
	var logLevel string

	root := &cobra.Command{
		Use:   "tonopahsim",
		Short: "tonopahsim drives the Tonopah multipath congestion controller against a simulated two-path link",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and print a per-path summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			setLogLevel(logLevel)

			cfg, err := loadSimConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			} else {
				setLogLevel(cfg.LogLevel)
			}

			results, err := runSimulation(context.Background(), cfg)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Printf("path %-12s (id=%d): final ack sequence %d\n", r.Name, r.Path, r.FinalAck)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML simulation config (omit for built-in defaults)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, error, or nothing (overrides the config file)")

	root.AddCommand(runCmd)
	return root
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		utils.SetLogLevel(utils.LogLevelDebug)
	case "error":
		utils.SetLogLevel(utils.LogLevelError)
	case "nothing":
		utils.SetLogLevel(utils.LogLevelNothing)
	default:
		utils.SetLogLevel(utils.LogLevelInfo)
	}
}
