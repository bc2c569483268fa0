package peak

const (
	DefaultProminence = 10.0
	DefaultDistance   = 5
	DefaultWidth      = 3
)

// Option configures peak detection.
type Option func(*config)

type config struct {
	height     float64
	hasHeight  bool
	prominence float64
	distance   int
	width      int
}

func defaultConfig() config {
	return config{
		prominence: DefaultProminence,
		distance:   DefaultDistance,
		width:      DefaultWidth,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithHeight requires peaks to reach at least h. Without it no height
// threshold applies.
func WithHeight(h float64) Option {
	return func(c *config) {
		c.height = h
		c.hasHeight = true
	}
}

// WithProminence sets the minimum prominence. Negative values are ignored.
func WithProminence(p float64) Option {
	return func(c *config) {
		if p >= 0 {
			c.prominence = p
		}
	}
}

// WithDistance sets the minimum spacing in samples between kept peaks.
// Values below 1 are ignored.
func WithDistance(d int) Option {
	return func(c *config) {
		if d >= 1 {
			c.distance = d
		}
	}
}

// WithWidth sets the half width in samples of the protected window around
// each peak. Negative values are ignored.
func WithWidth(w int) Option {
	return func(c *config) {
		if w >= 0 {
			c.width = w
		}
	}
}
