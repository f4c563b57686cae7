package inventory

import (
	"context"
	"fmt"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/services/config"
)

// Explorer resolves fleets from the registry and fetches their records.
type Explorer interface {
	ListFleets(ctx context.Context) ([]domain.Fleet, error)
	GetCurrency(ctx context.Context, fleet domain.Fleet) (string, error)
	GetAssets(ctx context.Context, fleet domain.Fleet) ([]domain.Asset, error)
	GetLicenses(ctx context.Context, fleet domain.Fleet) ([]domain.LicenseRecord, error)
}

type fleetExplorer struct {
	registry config.Registry
	loader   *Loader
}

func NewExplorer(registry config.Registry) Explorer {
	return &fleetExplorer{registry: registry, loader: NewLoader()}
}

func (e *fleetExplorer) ListFleets(ctx context.Context) ([]domain.Fleet, error) {
	profiles, err := e.registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	var fleets []domain.Fleet
	for _, profile := range profiles {
		fleets = append(fleets, domain.Fleet{Name: profile.Name})
	}
	return fleets, nil
}

func (e *fleetExplorer) GetCurrency(ctx context.Context, fleet domain.Fleet) (string, error) {
	profile, err := e.registry.GetProfile(ctx, fleet.Name)
	if err != nil {
		return "", err
	}
	return profile.Currency, nil
}

func (e *fleetExplorer) GetAssets(ctx context.Context, fleet domain.Fleet) ([]domain.Asset, error) {
	profile, err := e.registry.GetProfile(ctx, fleet.Name)
	if err != nil {
		return nil, err
	}
	if profile.AssetsPath == "" {
		return nil, fmt.Errorf("fleet %q has no assets file configured", fleet.Name)
	}
	return e.loader.LoadAssets(profile.AssetsPath)
}

func (e *fleetExplorer) GetLicenses(ctx context.Context, fleet domain.Fleet) ([]domain.LicenseRecord, error) {
	profile, err := e.registry.GetProfile(ctx, fleet.Name)
	if err != nil {
		return nil, err
	}
	if profile.LicensesPath == "" {
		return nil, fmt.Errorf("fleet %q has no licenses file configured", fleet.Name)
	}
	return e.loader.LoadLicenses(profile.LicensesPath, profile.ActivityPath)
}
