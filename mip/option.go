package mip

import "fmt"

type Option func(*Model) error

func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger

		return nil
	}
}

// WithTolerance sets the simplex feasibility tolerance.
func WithTolerance(tol float64) Option {
	return func(m *Model) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", tol)
		}
		m.tol = tol

		return nil
	}
}

// WithNodeLimit caps the number of branch-and-bound nodes explored
// before Optimize gives up with ErrNodeLimit.
func WithNodeLimit(n int) Option {
	return func(m *Model) error {
		if n < 1 {
			return fmt.Errorf("node limit must be at least 1, got %d", n)
		}
		m.nodeLimit = n

		return nil
	}
}
