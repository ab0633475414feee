package modal

import (
	"embed"
	"io/fs"
)

//go:embed assets/dialog.css
var embeddedAssets embed.FS

// AssetsFS exposes the default dialog stylesheet so applications can serve
// it without maintaining their own copy.
//
// Typical mount:
//
//	mux.Handle("/dialog/",
//	  http.StripPrefix("/dialog/",
//	    http.FileServerFS(modal.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// DefaultStylesheet returns the built-in dialog stylesheet contents. Handy
// for inlining into a page <style> block.
func DefaultStylesheet() string {
	raw, err := embeddedAssets.ReadFile("assets/dialog.css")
	if err != nil {
		return ""
	}
	return string(raw)
}
