package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-maze/assets"
	"github.com/pixil98/go-maze/internal/content"
)

// WorldConfig locates the world assets. An empty path plays the campus
// world built into the binary.
type WorldConfig struct {
	Path string `json:"path"`
	Seed uint64 `json:"seed"`
}

func (c *WorldConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	fi, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("world: invalid path %q: %w", c.Path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("world: path %q is not a directory", c.Path)
	}
	return nil
}

func (c *WorldConfig) BuildDictionary() (*content.Dictionary, error) {
	if c.Path == "" {
		return content.LoadFS(assets.Campus())
	}
	return content.Load(c.Path)
}
