package commands

import (
	"fmt"
	"io"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/services/fleet"
	"github.com/spf13/cobra"
)

type depreciationCmd struct {
	cfgPath    string
	policyPath string
	fleetName  string
	method     string
	assetID    string
	format     string
	out        io.Writer
}

func NewDepreciationCmd(out io.Writer) *cobra.Command {
	dc := &depreciationCmd{out: out}
	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Report current book values for a fleet",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.cfgPath, "config", DefaultConfigPath(), "Path to the fleet registry file")
	cmd.Flags().StringVar(&dc.policyPath, "policy", "", "Path to a policy file (defaults apply when omitted)")
	cmd.Flags().StringVar(&dc.fleetName, "fleet", "", "Fleet to report on")
	cmd.Flags().StringVar(&dc.method, "method", string(domain.MethodStraightLine),
		"Depreciation method: straight_line, declining_balance, or sum_of_years")
	cmd.Flags().StringVar(&dc.assetID, "asset", "", "Report a single asset's schedule instead of the whole fleet")
	cmd.Flags().StringVar(&dc.format, "format", "table", "Output format: table or csv")

	_ = cmd.MarkFlagRequired("fleet")
	return cmd
}

func (dc *depreciationCmd) run(cmd *cobra.Command, _ []string) error {
	method := domain.Method(dc.method)
	switch method {
	case domain.MethodStraightLine, domain.MethodDecliningBalance, domain.MethodSumOfYears:
	default:
		return fmt.Errorf("unknown depreciation method %q", dc.method)
	}

	_, reporter, err := buildReporter(dc.cfgPath, dc.policyPath)
	if err != nil {
		return err
	}

	if dc.assetID != "" {
		return dc.printAsset(cmd, reporter, method)
	}

	report, err := reporter.DepreciationReport(cmd.Context(), domain.Fleet{Name: dc.fleetName}, method)
	if err != nil {
		return fmt.Errorf("failed to build depreciation report: %w", err)
	}

	handler, err := handlerFor(dc.format, dc.out)
	if err != nil {
		return err
	}
	return handler.Handle(report)
}

func (dc *depreciationCmd) printAsset(cmd *cobra.Command, reporter *fleet.Reporter, method domain.Method) error {
	result, schedule, err := reporter.AssetValuation(cmd.Context(), domain.Fleet{Name: dc.fleetName}, dc.assetID, method)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintf(dc.out, "asset %s: insufficient data (purchase price or date missing)\n", dc.assetID)
		return nil
	}

	fmt.Fprintf(dc.out, "Asset %s (%s)\n", dc.assetID, result.Method)
	fmt.Fprintf(dc.out, "  Original value:  %.2f\n", result.OriginalValue)
	fmt.Fprintf(dc.out, "  Current value:   %.2f\n", result.CurrentValue)
	fmt.Fprintf(dc.out, "  Depreciated:     %.2f (%.1f%%)\n", result.AccumulatedDepreciation, result.DepreciationPercentage)
	fmt.Fprintf(dc.out, "  Remaining life:  %.1f years\n", result.RemainingLifeYears)
	fmt.Fprintln(dc.out)
	fmt.Fprintln(dc.out, "  Year  Date        Book Value  Yearly Depreciation")
	for _, entry := range schedule {
		fmt.Fprintf(dc.out, "  %4d  %s  %10.2f  %10.2f\n",
			entry.Year, entry.Date.Format("2006-01-02"), entry.BookValue, entry.YearlyDepreciation)
	}
	return nil
}
