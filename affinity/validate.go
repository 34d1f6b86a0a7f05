package affinity

import "fmt"

// validateOptions checks an Options value before any work is done.
// Every failure wraps ErrConfiguration together with the specific sentinel.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if err := validateDamping(o.Damping); err != nil {
		return err
	}
	if o.MaxEpochs < 1 {
		return fmt.Errorf("%w: %w: max_epochs=%d", ErrConfiguration, ErrBadMaxEpochs, o.MaxEpochs)
	}
	if o.StabilityThreshold < 0 {
		return fmt.Errorf("%w: %w: stability_threshold=%d",
			ErrConfiguration, ErrBadThreshold, o.StabilityThreshold)
	}

	return validateWorkers(o.Workers)
}

func validateDamping(d float64) error {
	// Written as a negated range so NaN is rejected too.
	if !(d > 0 && d < 1) {
		return fmt.Errorf("%w: %w: damping=%v", ErrConfiguration, ErrBadDamping, d)
	}

	return nil
}

func validateWorkers(w int) error {
	if w < 1 {
		return fmt.Errorf("%w: %w: workers=%d", ErrConfiguration, ErrBadWorkers, w)
	}

	return nil
}
