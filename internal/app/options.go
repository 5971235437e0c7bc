package app

import (
	"os"
	"time"

	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/logger"

	"go.uber.org/zap"
)

// Options are the application startup knobs.
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}
