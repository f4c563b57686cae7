package commands

import (
	"fmt"
	"io"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

type licensesCmd struct {
	cfgPath    string
	policyPath string
	fleetName  string
	format     string
	out        io.Writer
}

func NewLicensesCmd(out io.Writer) *cobra.Command {
	lc := &licensesCmd{out: out}
	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "Analyze license utilization, compliance, and savings",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.cfgPath, "config", DefaultConfigPath(), "Path to the fleet registry file")
	cmd.Flags().StringVar(&lc.policyPath, "policy", "", "Path to a policy file (defaults apply when omitted)")
	cmd.Flags().StringVar(&lc.fleetName, "fleet", "", "Fleet to report on")
	cmd.Flags().StringVar(&lc.format, "format", "table", "Output format: table or csv")

	_ = cmd.MarkFlagRequired("fleet")
	return cmd
}

func (lc *licensesCmd) run(cmd *cobra.Command, _ []string) error {
	_, reporter, err := buildReporter(lc.cfgPath, lc.policyPath)
	if err != nil {
		return err
	}

	report, err := reporter.LicenseReport(cmd.Context(), domain.Fleet{Name: lc.fleetName})
	if err != nil {
		return fmt.Errorf("failed to build license report: %w", err)
	}

	handler, err := handlerFor(lc.format, lc.out)
	if err != nil {
		return err
	}
	return handler.Handle(report)
}
