package staticfiles

import (
	"embed"
	"io/fs"
)

//go:embed index.html sw.js manifest.webmanifest
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}
