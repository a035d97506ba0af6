package retriever

type config struct {
	listWorkers   int
	listQueue     int
	detailWorkers int
	detailQueue   int
}

// Option tunes the pools of a Service.
type Option func(*config)

// WithListWorkers sets the number of concurrent day listings.
func WithListWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.listWorkers = n
		}
	}
}

// WithListQueue sets how many days may wait for a listing worker.
func WithListQueue(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.listQueue = n
		}
	}
}

// WithDetailWorkers sets the number of concurrent block detail fetches.
func WithDetailWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.detailWorkers = n
		}
	}
}

// WithDetailQueue sets how many block handles may wait for a detail worker.
func WithDetailQueue(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.detailQueue = n
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		listWorkers:   defaultListWorkers,
		listQueue:     defaultListQueue,
		detailWorkers: defaultDetailWorkers,
		detailQueue:   defaultDetailQueue,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
