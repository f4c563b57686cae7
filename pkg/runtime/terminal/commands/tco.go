package commands

import (
	"fmt"
	"io"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

type tcoCmd struct {
	cfgPath    string
	policyPath string
	fleetName  string
	format     string
	out        io.Writer
}

func NewTCOCmd(out io.Writer) *cobra.Command {
	tc := &tcoCmd{out: out}
	cmd := &cobra.Command{
		Use:   "tco",
		Short: "Project total cost of ownership for a fleet",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.cfgPath, "config", DefaultConfigPath(), "Path to the fleet registry file")
	cmd.Flags().StringVar(&tc.policyPath, "policy", "", "Path to a policy file (defaults apply when omitted)")
	cmd.Flags().StringVar(&tc.fleetName, "fleet", "", "Fleet to report on")
	cmd.Flags().StringVar(&tc.format, "format", "table", "Output format: table or csv")

	_ = cmd.MarkFlagRequired("fleet")
	return cmd
}

func (tc *tcoCmd) run(cmd *cobra.Command, _ []string) error {
	_, reporter, err := buildReporter(tc.cfgPath, tc.policyPath)
	if err != nil {
		return err
	}

	report, err := reporter.TCOReport(cmd.Context(), domain.Fleet{Name: tc.fleetName})
	if err != nil {
		return fmt.Errorf("failed to build TCO report: %w", err)
	}

	handler, err := handlerFor(tc.format, tc.out)
	if err != nil {
		return err
	}
	return handler.Handle(report)
}
