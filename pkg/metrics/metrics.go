// Package metrics declares the OpenTelemetry instruments recorded while
// resolving declarations.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

// ScopeName is the instrumentation scope of the resolver instruments.
const ScopeName = "themeconf/resolver"

// Outcome attribute values.
const (
	OutcomeOK = "ok"
)

// Resolver groups the instruments recorded for each resolution.
type Resolver struct {
	resolutions metric.Int64Counter
	duration    metric.Float64Histogram
	warnings    metric.Int64Counter
}

// NewResolver creates the resolver instruments from meter. A nil meter uses
// the global meter provider.
func NewResolver(meter metric.Meter) (*Resolver, error) {
	if meter == nil {
		meter = otel.Meter(ScopeName)
	}

	resolutions, err := meter.Int64Counter("themeconf.resolutions",
		metric.WithDescription("Number of declaration resolutions by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create resolutions counter: %w", err)
	}
	duration, err := meter.Float64Histogram("themeconf.resolve.duration",
		metric.WithDescription("Time spent resolving a declaration."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	warnings, err := meter.Int64Counter("themeconf.resolve.warnings",
		metric.WithDescription("Number of non-fatal warnings emitted by resolutions."))
	if err != nil {
		return nil, fmt.Errorf("could not create warnings counter: %w", err)
	}

	return &Resolver{resolutions: resolutions, duration: duration, warnings: warnings}, nil
}

// Record records one resolution with its outcome, elapsed time and warning
// count.
func (r *Resolver) Record(ctx context.Context, outcome string, elapsed time.Duration, warnings int) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	r.resolutions.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
	if warnings > 0 {
		r.warnings.Add(ctx, int64(warnings))
	}
}
