package resourceprovider

// Config holds the runtime configuration for a Provider, in the
// Config/DefaultConfig style used throughout the teacher package (see
// cache-manager/service.go's Config and warming/service.go's
// DefaultConfig).
type Config struct {
	// Workers is the fixed number of worker goroutines servicing loads.
	// Defaults to 10 (spec default) when <= 0.
	Workers int

	// LoadPriority is the priority at which every load is submitted to
	// the worker pool. The provider always submits at priority 0 unless
	// configured otherwise.
	LoadPriority int32

	// EnableLogging turns on structured JSON logging of provider
	// lifecycle events (source add/remove, load start/success/failure,
	// mark-unused drains). Off by default to keep library use quiet.
	EnableLogging bool
}

// DefaultConfig returns the spec's default configuration: 10 workers,
// priority 0, logging disabled.
func DefaultConfig() Config {
	return Config{
		Workers:       10,
		LoadPriority:  0,
		EnableLogging: false,
	}
}
