package planner

import "github.com/pkg/errors"

// Config holds the tunable constants of the engine. Defaults reproduce the
// most recent production behavior; none of them are laws.
type Config struct {
	// BudgetAllocator
	ActivityShare float64 `yaml:"activity_share"`

	// DestinationSelector
	MinStrictCandidates int `yaml:"min_strict_candidates"`
	MinCandidates       int `yaml:"min_candidates"`
	MaxCandidates       int `yaml:"max_candidates"`

	// CostEstimator
	CostFloorRatio     float64 `yaml:"cost_floor_ratio"`
	CostCeilingRatio   float64 `yaml:"cost_ceiling_ratio"`
	BudgetScaleDivisor float64 `yaml:"budget_scale_divisor"`
	BudgetScaleMin     float64 `yaml:"budget_scale_min"`
	BudgetScaleMax     float64 `yaml:"budget_scale_max"`
	VariationMin       float64 `yaml:"variation_min"`
	VariationMax       float64 `yaml:"variation_max"`

	// BudgetReconciler
	BandLow    float64 `yaml:"band_low"`
	BandHigh   float64 `yaml:"band_high"`
	BandTarget float64 `yaml:"band_target"`
	MaxUpscale float64 `yaml:"max_upscale"`

	// ItineraryAssembler
	RecommendedCount int `yaml:"recommended_count"`

	Tables Tables `yaml:"tables"`
}

func DefaultConfig() Config {
	return Config{
		ActivityShare: 0.7,

		MinStrictCandidates: 12,
		MinCandidates:       10,
		MaxCandidates:       20,

		CostFloorRatio:     0.2,
		CostCeilingRatio:   0.6,
		BudgetScaleDivisor: 50,
		BudgetScaleMin:     1.0,
		BudgetScaleMax:     2.5,
		VariationMin:       0.8,
		VariationMax:       1.2,

		BandLow:    0.8,
		BandHigh:   1.2,
		BandTarget: 0.9,
		MaxUpscale: 1.2,

		RecommendedCount: 3,

		Tables: DefaultTables(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.ActivityShare <= 0 || c.ActivityShare > 1:
		return errors.Wrapf(ErrInvalidConfig, "activity_share must be in (0, 1], got %v", c.ActivityShare)
	case c.MaxCandidates < 1:
		return errors.Wrapf(ErrInvalidConfig, "max_candidates must be positive, got %d", c.MaxCandidates)
	case c.MinCandidates < 0 || c.MinStrictCandidates < 0:
		return errors.Wrap(ErrInvalidConfig, "candidate thresholds must not be negative")
	case c.CostFloorRatio < 0 || c.CostFloorRatio > c.CostCeilingRatio:
		return errors.Wrapf(ErrInvalidConfig, "cost clamp [%v, %v] is not a range", c.CostFloorRatio, c.CostCeilingRatio)
	case c.BudgetScaleDivisor <= 0:
		return errors.Wrap(ErrInvalidConfig, "budget_scale_divisor must be positive")
	case c.BudgetScaleMin > c.BudgetScaleMax:
		return errors.Wrap(ErrInvalidConfig, "budget_scale_min exceeds budget_scale_max")
	case c.VariationMin <= 0 || c.VariationMin > c.VariationMax:
		return errors.Wrap(ErrInvalidConfig, "variation range is not positive")
	case c.BandLow <= 0 || c.BandLow > c.BandTarget || c.BandTarget > c.BandHigh:
		return errors.Wrapf(ErrInvalidConfig, "band must satisfy 0 < low <= target <= high, got %v/%v/%v",
			c.BandLow, c.BandTarget, c.BandHigh)
	case c.MaxUpscale < 1:
		return errors.Wrap(ErrInvalidConfig, "max_upscale must be at least 1")
	case c.RecommendedCount < 0:
		return errors.Wrap(ErrInvalidConfig, "recommended_count must not be negative")
	}
	return c.Tables.Validate()
}
