package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html
var FS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
}

func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(FS, "*.html")
}
