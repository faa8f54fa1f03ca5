package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-maze/internal/listener"
	"github.com/pixil98/go-maze/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	if err := cfg.Log.Setup(); err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	dict, err := cfg.World.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}
	slog.Info("world loaded", "path", cfg.World.Path, "scenarios", len(dict.Scenarios.GetAll()))

	opts := []session.Option{session.WithColor(cfg.Color)}
	if cfg.WrapWidth > 0 {
		opts = append(opts, session.WithWrapWidth(cfg.WrapWidth))
	}
	if cfg.World.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.World.Seed))
	}
	cm := listener.NewConnectionManager(session.NewManager(dict, opts...))

	workers := service.WorkerList{}

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = w
	}
	if len(listeners) > 0 {
		workers["listeners"] = &listeners
	}

	if cfg.Console {
		workers["console"] = listener.NewConsoleListener(os.Stdin, os.Stdout, cm)
	}

	return workers, nil
}
