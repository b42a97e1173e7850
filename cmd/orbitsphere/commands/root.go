package commands

import (
	"github.com/spf13/cobra"

	"github.com/ashshourov/OrbitSphere/internal/app"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/logging"
	"github.com/ashshourov/OrbitSphere/internal/world"
)

// version is overridden at build time with -ldflags "-X ...commands.version=".
var version = "dev"

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *logging.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "orbitsphere",
		Short:        "Orbiting-item viewer with choreographed scene transitions",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				c.Logging.Level = logLevel
			}
			cfg = c
			logger = logging.New(c.Logging, version)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults built in)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(runCmd(), simulateCmd())
	return root
}

// buildApp loads the configured layout and wires the app.
func buildApp() (*app.App, *world.Layout, error) {
	layout, err := world.LoadLayoutFile(cfg.Layout.Path)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(cfg, logger, layout)
	if err != nil {
		return nil, nil, err
	}
	return a, layout, nil
}
