package app

import (
	"go.uber.org/zap"
)

// App is everything a command needs: the resolved config, the logger and
// the wired services.
type App struct {
	Config *Config
	Log    *zap.Logger
	*Wire
}

// New validates cfg and wires the application around log.
func New(cfg *Config, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Log: log, Wire: w}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	if a != nil && a.Log != nil {
		_ = a.Log.Sync()
	}
}
