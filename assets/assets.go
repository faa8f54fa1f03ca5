// Package assets holds the worlds that ship with the game.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed campus
var worlds embed.FS

// Campus is the default world, used when no world path is configured.
func Campus() fs.FS {
	sub, err := fs.Sub(worlds, "campus")
	if err != nil {
		// campus is embedded at build time
		panic(err)
	}
	return sub
}
