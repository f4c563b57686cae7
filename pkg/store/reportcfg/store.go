// Package reportcfg persists saved report configurations. The reporting
// layers receive a Store rather than reaching into any ambient state, so
// the backend is swappable: in-memory for tests and single runs, Redis
// for shared deployments.
package reportcfg

import (
	"context"
	"errors"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
)

// ErrNotFound is returned when no configuration exists under a name.
var ErrNotFound = errors.New("report config not found")

type Store interface {
	Save(ctx context.Context, cfg domain.ReportConfig) error
	Get(ctx context.Context, name string) (*domain.ReportConfig, error)
	List(ctx context.Context) ([]domain.ReportConfig, error)
	Delete(ctx context.Context, name string) error
}
