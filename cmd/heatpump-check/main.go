package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"heatpump_check/internal/config"
)

func main() {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "heatpump-check",
		Short:         "Heat-pump efficiency check: simulation, recommendations and scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level from the config")

	loadConfig := func() (*config.Config, *logrus.Logger, error) {
		var (
			cfg *config.Config
			err error
		)
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return nil, nil, err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		log, err := newLogger(cfg.Log)
		if err != nil {
			return nil, nil, err
		}
		return cfg, log, nil
	}

	rootCmd.AddCommand(serveCmd(loadConfig))
	rootCmd.AddCommand(simulateCmd(loadConfig))
	rootCmd.AddCommand(annualizeCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(rulesCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

type configLoader func() (*config.Config, *logrus.Logger, error)

func serveCmd(load configLoader) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST and WebSocket server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServe(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides server.addr)")
	return cmd
}

func simulateCmd(load configLoader) *cobra.Command {
	var (
		meterPath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [profile.yaml]",
		Short: "Run the efficiency check for a household profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), log, simulateOptions{
				ProfilePath:    args[0],
				MeterPath:      meterPath,
				JSON:           asJSON,
				DefaultPriceCt: cfg.Engine.DefaultPriceCt,
			})
		},
	}

	cmd.Flags().StringVarP(&meterPath, "meter", "m", "", "meter CSV export (date,meter_kwh[,heat_kwh]) replacing the profile's reading")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func annualizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annualize [meter.csv]",
		Short: "Project a meter export to a full year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnualize(cmd.OutOrStdout(), args[0])
		},
	}
}

func catalogCmd() *cobra.Command {
	var overridesPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the intervention cost catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd.OutOrStdout(), overridesPath)
		},
	}

	cmd.Flags().StringVarP(&overridesPath, "overrides", "o", "", "YAML file with catalog overrides to merge")
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the recommendation rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printRules(cmd.OutOrStdout())
			return nil
		},
	}
}

func newLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
