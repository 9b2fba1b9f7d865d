package bottega

import (
	"embed"
	"io/fs"
)

// EmbeddedAssets contains the default stylesheet and favicon, served under
// /static/ when the static directory does not override them.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func embeddedAssets() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}
