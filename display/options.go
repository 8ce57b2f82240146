package display

type Option func(c *Controller)

// WithSleeper replaces the blocking sleep used between flashes.
func WithSleeper(s Sleeper) Option {
	return func(c *Controller) {
		if s != nil {
			c.sleep = s
		}
	}
}

// WithErrorHandler routes driver failures to h instead of the console.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Controller) {
		if h != nil {
			c.onErr = h
		}
	}
}
