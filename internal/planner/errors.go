package planner

import "github.com/pkg/errors"

var (
	ErrInvalidParameters      = errors.New("invalid trip parameters")
	ErrNoSuitableDestinations = errors.New("no suitable destinations found for the given criteria")
	ErrInvalidConfig          = errors.New("invalid planner config")
)

// Validate fails fast on inputs that would make any later division meaningless.
func (p TripParameters) Validate() error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return errors.Wrap(ErrInvalidParameters, "start and end dates are required")
	}
	if daysBetween(p.StartDate, p.EndDate) <= 0 {
		return errors.Wrap(ErrInvalidParameters, "end date must be after start date")
	}
	if p.Budget <= 0 {
		return errors.Wrapf(ErrInvalidParameters, "budget must be positive, got %.2f", p.Budget)
	}
	if p.GroupSize < 1 {
		return errors.Wrapf(ErrInvalidParameters, "group size must be at least 1, got %d", p.GroupSize)
	}
	return nil
}
