// Package web holds the browser front-end served at the site root.
package web

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
)

//go:embed static
var static embed.FS

func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open embedded front-end")
	}

	return sub
}
