package config

import (
	"fmt"
	"time"

	"github.com/it-tools/asset-atlas/pkg/services/license"
	"github.com/it-tools/asset-atlas/pkg/services/tco"
	"github.com/spf13/viper"
)

// Policy is the tunable side of the valuation services: the operating
// cost model behind TCO projections and the license-optimization
// heuristics. Everything has a sane default; a policy file only needs
// to name what it changes.
type Policy struct {
	ElectricityCostPerKWh    float64 `mapstructure:"electricity_cost_per_kwh"`
	AnnualMaintenancePercent float64 `mapstructure:"annual_maintenance_percent"`
	AvgSupportHoursPerYear   float64 `mapstructure:"avg_support_hours_per_year"`
	SupportCostPerHour       float64 `mapstructure:"support_cost_per_hour"`
	TCOHorizonYears          int     `mapstructure:"tco_horizon_years"`

	DecliningBalanceRate float64 `mapstructure:"declining_balance_rate"`

	DowngradeHeadroom        float64 `mapstructure:"downgrade_headroom"`
	ConsolidationSavingsRate float64 `mapstructure:"consolidation_savings_rate"`
	InactivityThresholdDays  int     `mapstructure:"inactivity_threshold_days"`
}

// DefaultPolicy mirrors the built-in defaults of the services.
func DefaultPolicy() Policy {
	tcoDefaults := tco.DefaultOptions()
	licDefaults := license.DefaultPolicy()
	return Policy{
		ElectricityCostPerKWh:    tcoDefaults.ElectricityCostPerKWh,
		AnnualMaintenancePercent: tcoDefaults.AnnualMaintenancePercent,
		AvgSupportHoursPerYear:   tcoDefaults.AvgSupportHoursPerYear,
		SupportCostPerHour:       tcoDefaults.SupportCostPerHour,
		TCOHorizonYears:          tcoDefaults.YearsToCalculate,
		DecliningBalanceRate:     2,
		DowngradeHeadroom:        licDefaults.DowngradeHeadroom,
		ConsolidationSavingsRate: licDefaults.ConsolidationSavingsRate,
		InactivityThresholdDays:  int(licDefaults.InactivityThreshold / (24 * time.Hour)),
	}
}

// LoadPolicy reads a policy file. An empty path returns the defaults.
func LoadPolicy(path string) (*Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return &policy, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	setPolicyDefaults(v, policy)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	if err := v.Unmarshal(&policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	return &policy, nil
}

func setPolicyDefaults(v *viper.Viper, policy Policy) {
	v.SetDefault("electricity_cost_per_kwh", policy.ElectricityCostPerKWh)
	v.SetDefault("annual_maintenance_percent", policy.AnnualMaintenancePercent)
	v.SetDefault("avg_support_hours_per_year", policy.AvgSupportHoursPerYear)
	v.SetDefault("support_cost_per_hour", policy.SupportCostPerHour)
	v.SetDefault("tco_horizon_years", policy.TCOHorizonYears)
	v.SetDefault("declining_balance_rate", policy.DecliningBalanceRate)
	v.SetDefault("downgrade_headroom", policy.DowngradeHeadroom)
	v.SetDefault("consolidation_savings_rate", policy.ConsolidationSavingsRate)
	v.SetDefault("inactivity_threshold_days", policy.InactivityThresholdDays)
}

// TCOOptions translates the policy into estimator options.
func (p Policy) TCOOptions() tco.Options {
	return tco.Options{
		ElectricityCostPerKWh:    p.ElectricityCostPerKWh,
		AnnualMaintenancePercent: p.AnnualMaintenancePercent,
		AvgSupportHoursPerYear:   p.AvgSupportHoursPerYear,
		SupportCostPerHour:       p.SupportCostPerHour,
		YearsToCalculate:         p.TCOHorizonYears,
	}
}

// LicensePolicy translates the policy into analyzer heuristics.
func (p Policy) LicensePolicy() license.Policy {
	return license.Policy{
		DowngradeHeadroom:        p.DowngradeHeadroom,
		ConsolidationSavingsRate: p.ConsolidationSavingsRate,
		InactivityThreshold:      time.Duration(p.InactivityThresholdDays) * 24 * time.Hour,
	}
}
