// Package depreciation computes point-in-time book values and
// year-by-year schedules for asset records using straight-line,
// declining-balance, or sum-of-years-digits methods.
//
// Asset age is measured against a fixed 365.25-day year, not the
// calendar; the services in this package are pure functions of their
// inputs and are safe for concurrent use.
package depreciation

import (
	"math"
	"time"

	"github.com/it-tools/asset-atlas/pkg/models/domain"
	"github.com/it-tools/asset-atlas/pkg/money"
)

const (
	hoursPerYear = 24 * 365.25

	// DefaultDecliningRate is the declining-balance accelerator:
	// 2 means double-declining.
	DefaultDecliningRate = 2.0
)

// Options tune a single calculation. The zero value means "now, with
// double-declining balance".
type Options struct {
	// Now anchors the age calculation; zero uses the wall clock.
	Now time.Time
	// DecliningRate overrides the declining-balance accelerator.
	// Ignored by the other methods; zero means DefaultDecliningRate.
	DecliningRate float64
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) decliningRate() float64 {
	if o.DecliningRate <= 0 {
		return DefaultDecliningRate
	}
	return o.DecliningRate
}

// resolved is a fact set with every default applied and every bound
// clamped, ready for arithmetic.
type resolved struct {
	price   float64
	salvage float64
	life    float64
	years   float64 // fractional years since purchase, >= 0
}

// resolve applies category defaults and boundary clamps. It returns
// ok=false when the facts fail the required-field precondition, in which
// case no computation is attempted.
func resolve(facts domain.AssetFinancialFacts, now time.Time) (resolved, bool) {
	if !facts.HasRequiredFields() {
		return resolved{}, false
	}

	r := resolved{price: *facts.PurchasePrice}

	if facts.UsefulLifeYears != nil && *facts.UsefulLifeYears > 0 {
		r.life = *facts.UsefulLifeYears
	} else {
		r.life = UsefulLifeForCategory(facts.Category)
	}

	if facts.SalvageValue != nil && *facts.SalvageValue >= 0 {
		r.salvage = *facts.SalvageValue
	} else {
		r.salvage = r.price * salvageRate
	}
	// Salvage above price is an out-of-range input, not an error.
	if r.salvage > r.price {
		r.salvage = r.price
	}

	r.years = now.Sub(*facts.PurchaseDate).Hours() / hoursPerYear
	if r.years < 0 {
		r.years = 0
	}

	return r, true
}

// Calculate returns the valuation of an asset under the given method, or
// nil when purchase price or purchase date is missing so callers can
// render an insufficient-data state.
func Calculate(facts domain.AssetFinancialFacts, method domain.Method, opts Options) *domain.DepreciationResult {
	r, ok := resolve(facts, opts.now())
	if !ok {
		return nil
	}

	accumulated := accrue(method, r, r.years, opts.decliningRate())

	current := r.price - accumulated
	if current < r.salvage {
		current = r.salvage
		accumulated = r.price - r.salvage
	}

	remaining := r.life - r.years
	if remaining < 0 {
		remaining = 0
	}

	currentValue := money.Round2(current)
	salvage := money.Round2(r.salvage)

	return &domain.DepreciationResult{
		Method:                  method,
		OriginalValue:           money.Round2(r.price),
		CurrentValue:            currentValue,
		SalvageValue:            salvage,
		AccumulatedDepreciation: money.Round2(accumulated),
		AnnualDepreciation:      money.Round2(annualFor(method, r, opts.decliningRate())),
		DepreciationPercentage:  money.Round2(accumulated / r.price * 100),
		UsefulLifeYears:         r.life,
		RemainingLifeYears:      math.Round(remaining*100) / 100,
		IsFullyDepreciated:      currentValue <= salvage,
	}
}

// accrue computes unrounded accumulated depreciation after `years`
// fractional years. Partial years accrue by linear interpolation within
// the year, applied uniformly across methods.
func accrue(method domain.Method, r resolved, years float64, rate float64) float64 {
	base := r.price - r.salvage
	if base <= 0 || years <= 0 {
		return 0
	}

	var accumulated float64
	switch method {
	case domain.MethodDecliningBalance:
		accumulated = accrueDecliningBalance(r, years, rate)
	case domain.MethodSumOfYears:
		accumulated = accrueSumOfYears(r, years)
	default:
		// Straight line is the fallback for unrecognized methods.
		accumulated = base / r.life * years
	}

	if accumulated > base {
		accumulated = base
	}
	return accumulated
}

func accrueDecliningBalance(r resolved, years float64, rate float64) float64 {
	yearlyRate := rate / r.life
	book := r.price
	whole := int(math.Floor(years))

	for y := 0; y < whole; y++ {
		d := book * yearlyRate
		if book-d < r.salvage {
			d = book - r.salvage
		}
		book -= d
		// Once the book value reaches salvage, nothing further
		// accrues no matter how much time has passed.
		if book <= r.salvage {
			return r.price - r.salvage
		}
	}

	fraction := years - float64(whole)
	d := book * yearlyRate * fraction
	if book-d < r.salvage {
		d = book - r.salvage
	}
	book -= d

	return r.price - book
}

func accrueSumOfYears(r resolved, years float64) float64 {
	base := r.price - r.salvage
	sumOfYears := r.life * (r.life + 1) / 2
	whole := int(math.Floor(years))

	var accumulated float64
	for y := 1; y <= whole; y++ {
		weight := r.life - float64(y) + 1
		if weight <= 0 {
			break
		}
		accumulated += base * weight / sumOfYears
	}

	fraction := years - float64(whole)
	if weight := r.life - float64(whole); weight > 0 && fraction > 0 {
		accumulated += base * weight / sumOfYears * fraction
	}

	return accumulated
}

// annualFor reports the depreciation accruing over the current year of
// the asset's life under the given method.
func annualFor(method domain.Method, r resolved, rate float64) float64 {
	base := r.price - r.salvage
	if base <= 0 {
		return 0
	}

	switch method {
	case domain.MethodDecliningBalance:
		start := accrue(method, r, math.Floor(r.years), rate)
		book := r.price - start
		d := book * rate / r.life
		if book-d < r.salvage {
			d = book - r.salvage
		}
		return d
	case domain.MethodSumOfYears:
		weight := r.life - math.Floor(r.years)
		if weight <= 0 {
			return 0
		}
		sumOfYears := r.life * (r.life + 1) / 2
		return base * weight / sumOfYears
	default:
		return base / r.life
	}
}
