package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded assets; scene paths are relative to it, e.g.
// "levels/playground.tmx".
func FS() fs.FS {
	return assetFS
}
