package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var siteStaticFS embed.FS

// FS exposes the embedded site rooted at static/.
func FS() http.FileSystem {
	sub, err := fs.Sub(siteStaticFS, "static")
	if err != nil {
		return http.FS(siteStaticFS)
	}
	return http.FS(sub)
}
