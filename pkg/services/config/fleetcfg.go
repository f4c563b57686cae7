// Package config loads the two configuration surfaces of the tool: the
// ini fleet registry (which inventories exist and where their files
// live) and the YAML policy file (cost assumptions and heuristics).
package config

import (
	"context"
	"fmt"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry resolves named fleet profiles from the user's config file.
// Each ini section is one fleet:
//
//	[head-office]
//	assets = /srv/inventory/head-office/assets.csv
//	licenses = /srv/inventory/head-office/licenses.csv
//	currency = USD
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.FleetProfile, error)
	GetProfile(ctx context.Context, name string) (*domain.FleetProfile, error)
}

type fleetRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load fleet config %s: %w", path, err)
	}
	return &fleetRegistry{cfg: cfg}, nil
}

func (fr *fleetRegistry) GetProfiles(_ context.Context) ([]domain.FleetProfile, error) {
	var profiles []domain.FleetProfile
	for _, section := range fr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (fr *fleetRegistry) GetProfile(_ context.Context, name string) (*domain.FleetProfile, error) {
	section, err := fr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("fleet %q not found: %w", name, err)
	}
	profile := profileFromSection(section)
	return &profile, nil
}

func profileFromSection(section *ini.Section) domain.FleetProfile {
	currency := section.Key("currency").String()
	if currency == "" {
		currency = "USD"
	}
	return domain.FleetProfile{
		Name:         section.Name(),
		AssetsPath:   section.Key("assets").String(),
		LicensesPath: section.Key("licenses").String(),
		ActivityPath: section.Key("seat_activity").String(),
		Currency:     currency,
	}
}
