package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-maze/internal/logger"
)

type Config struct {
	World     WorldConfig      `json:"world"`
	Console   bool             `json:"console"`
	Color     bool             `json:"color"`
	WrapWidth int              `json:"wrap_width"`
	Log       LogConfig        `json:"log"`
	Listeners []ListenerConfig `json:"listeners"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if !c.Console && len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("console or at least one listener is required"))
	}
	if c.WrapWidth < 0 {
		el.Add(fmt.Errorf("wrap_width must not be negative"))
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.World.validate())
	el.Add(c.Log.validate())

	return el.Err()
}

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

func (c *LogConfig) validate() error {
	el := errors.NewErrorList()

	if _, err := logger.ParseLevel(c.Level); err != nil {
		el.Add(fmt.Errorf("log: %w", err))
	}
	switch c.Format {
	case "", "text", "json":
	default:
		el.Add(fmt.Errorf("log: unknown format %q", c.Format))
	}

	return el.Err()
}

// Setup installs the configured default logger.
func (c *LogConfig) Setup() error {
	return logger.Setup(c.Level, c.Format)
}
