// Package web carries the embedded page templates and static assets, so the
// binary renders the same pages regardless of working directory.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html static/*
var files embed.FS

// Template parses one page template from the embedded set.
func Template(name string) *template.Template {
	return template.Must(template.ParseFS(files, "templates/"+name))
}

// Static serves the embedded assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
