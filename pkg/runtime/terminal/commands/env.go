package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/it-tools/asset-atlas/pkg/services/config"
	"github.com/it-tools/asset-atlas/pkg/services/fleet"
	"github.com/it-tools/asset-atlas/pkg/services/inventory"
)

// ReportHandler is anything that can render a finished report.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// DefaultConfigPath is where the fleet registry lives unless overridden.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".assetatlas.cfg"
	}
	return filepath.Join(home, ".assetatlas.cfg")
}

func buildReporter(cfgPath, policyPath string) (inventory.Explorer, *fleet.Reporter, error) {
	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load fleet registry: %w", err)
	}
	policy, err := config.LoadPolicy(policyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load policy: %w", err)
	}

	explorer := inventory.NewExplorer(registry)
	return explorer, fleet.NewReporter(explorer, *policy), nil
}

func handlerFor(format string, out io.Writer) (ReportHandler, error) {
	switch format {
	case "", "table":
		return export.NewReporter(out), nil
	case "csv":
		return export.NewCSVReporter(out), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected table or csv)", format)
	}
}
