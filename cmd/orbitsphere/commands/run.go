package commands

import (
	"github.com/spf13/cobra"

	"github.com/ashshourov/OrbitSphere/internal/screen"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the viewer window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Start(); err != nil {
				return err
			}
			return screen.Run(a, cfg.Window)
		},
	}
}
