package graphbase

import "github.com/go-logr/logr"

// Option configures a Graph at construction time.
type Option func(*options)

// options holds the construction-time configuration of a Graph.
type options struct {
	log                  logr.Logger // diagnostics sink; Discard by default
	metrics              *Metrics    // optional Prometheus collectors
	validateBeforeSearch bool        // run Validate before each search
}

// defaultOptions returns the configuration used when no Option is supplied:
// logging discarded, no metrics, permissive search.
func defaultOptions() options {
	return options{
		log: logr.Discard(),
	}
}

// WithLogger routes diagnostics (failed lookups, rejected insertions,
// unimplemented hooks) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records insertion and search outcomes into m.
// A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithValidateBeforeSearch makes every search call Validate first and fail on
// dangling edges or markers instead of silently skipping them.
func WithValidateBeforeSearch() Option {
	return func(o *options) { o.validateBeforeSearch = true }
}
