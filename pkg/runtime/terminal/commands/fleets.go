package commands

import (
	"fmt"
	"io"

	"github.com/it-tools/asset-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type fleetsCmd struct {
	cfgPath string
	out     io.Writer
}

func NewFleetsCmd(out io.Writer) *cobra.Command {
	fc := &fleetsCmd{out: out}
	cmd := &cobra.Command{
		Use:   "fleets",
		Short: "List configured fleets",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.cfgPath, "config", DefaultConfigPath(), "Path to the fleet registry file")
	return cmd
}

func (fc *fleetsCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(fc.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load fleet registry: %w", err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(fc.out, "no fleets configured")
		return nil
	}

	for _, profile := range profiles {
		fmt.Fprintf(fc.out, "%s\n  assets: %s\n  licenses: %s\n", profile, profile.AssetsPath, profile.LicensesPath)
	}
	return nil
}
