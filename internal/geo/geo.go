// Package geo supplies the device location shown on the home map.
package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPermissionDenied is the device refusing location access.
	ErrPermissionDenied = errors.New("permission to access location was denied")
	ErrUnavailable      = errors.New("location unavailable")
)

// Reading is a single position fix. Accuracy is in meters; zero means unknown.
type Reading struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// Describe renders the marker caption for r.
func (r Reading) Describe() string {
	if r.Accuracy > 0 {
		return fmt.Sprintf("Accuracy: %dm", int(math.Round(r.Accuracy)))
	}
	return "Location found"
}

type Locator interface {
	Locate(ctx context.Context) (Reading, error)
}

// StaticLocator answers with a fixed reading, or with ErrPermissionDenied
// when Denied is set.
type StaticLocator struct {
	Reading Reading
	Denied  bool
}

func (l StaticLocator) Locate(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if l.Denied {
		return Reading{}, ErrPermissionDenied
	}
	return l.Reading, nil
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (Reading, error)

func (f LocatorFunc) Locate(ctx context.Context) (Reading, error) { return f(ctx) }
