package runtime

import "go.uber.org/zap"

type config struct {
	memoryLimitPages uint32
	log              *zap.Logger
}

func defaultConfig() *config {
	return &config{log: zap.NewNop()}
}

// Option configures a Runtime.
type Option func(*config)

// WithMemoryLimitPages caps guest memory; one page is 64 KiB.
func WithMemoryLimitPages(pages uint32) Option {
	return func(c *config) {
		c.memoryLimitPages = pages
	}
}

// WithLogger sets the runtime logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
