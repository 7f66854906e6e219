package shapes

// Option configures a tessellation call.
// Use functional options to customize tessellation behavior.
//
// Example:
//
//	// Plain tessellation
//	m, err := shapes.Tessellate(spec)
//
//	// Reject NaN or infinite parameters and scale radii to pixels
//	m, err := shapes.Tessellate(spec, shapes.WithStrict(), shapes.WithScale(64))
type Option func(*options)

// options holds optional configuration for tessellation.
type options struct {
	strict bool
	scale  float64
}

// defaultOptions returns the default tessellation options.
func defaultOptions() options {
	return options{
		strict: false,
		scale:  1,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrict makes tessellation reject non-finite angles and radii with a
// ConfigurationError instead of propagating them into vertex positions.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithScale multiplies every length of the shape (radii, sizes) by s before
// tessellating. Editor components use pixelsPerUnit/2 here.
//
// Non-positive or non-finite scales are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 && isFinite(s) {
			o.scale = s
		}
	}
}
