package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"powsim/api"
	"powsim/node"
)

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = strings.Join(sortedKeys(validLogLevels), "|")
)

// sortedKeys is the Go 1.21 equivalent of slices.Sorted(maps.Keys(m)).
func sortedKeys(m map[string]slog.Level) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

var rootCmd = &cobra.Command{
	Use:   "powsim",
	Short: "Run a proof-of-work blockchain playground",
	Long: `powsim mines blocks over HTTP, validates chain integrity, and
simulates longest-chain consensus across a small set of in-process nodes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setLogLevel(viper.GetString("log-level"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := node.Config{
			NodeCount:  viper.GetInt("nodes"),
			Difficulty: viper.GetInt("difficulty"),
		}

		app, err := node.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		server := api.NewServer(app, viper.GetString("listen"))
		return server.Start(cmd.Context())
	},
}

// setLogLevel installs the default slog handler at the requested level.
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	rootCmd.Flags().String("listen", ":8080", "HTTP listen address")
	rootCmd.Flags().Int("nodes", 4, "number of simulated network nodes")
	rootCmd.Flags().Int("difficulty", 2, "initial mining difficulty (1-5)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		slog.Error("Failed to bind persistent flags", "error", err)
	}
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		slog.Error("Failed to bind flags", "error", err)
	}

	rootCmd.SilenceUsage = true

	viper.SetEnvPrefix("powsim")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
