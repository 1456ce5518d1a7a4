package iir

import "github.com/cwbudde/algo-iir/dsp/filter/biquad"

// DefaultMaxOrder is the default order capacity of a Filter.
const DefaultMaxOrder = 16

// Config holds the construction-time settings of a Filter.
type Config struct {
	// MaxOrder bounds the prototype order. It sizes coefficient and
	// register storage to MaxOrder sections, which also fits band designs
	// of order MaxOrder.
	MaxOrder int

	// Structure selects the recursion used by every section.
	Structure biquad.Structure
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns MaxOrder 16 with Direct Form II.
func DefaultConfig() Config {
	return Config{
		MaxOrder:  DefaultMaxOrder,
		Structure: biquad.DirectFormII,
	}
}

// WithMaxOrder sets the order capacity. Values below 1 are ignored.
func WithMaxOrder(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxOrder = n
		}
	}
}

// WithStructure selects the recursion structure. Unknown values are ignored.
func WithStructure(s biquad.Structure) Option {
	return func(cfg *Config) {
		if s.Valid() {
			cfg.Structure = s
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
