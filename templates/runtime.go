// Package templates holds the embedded client and server file templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sync"
	"text/template"
)

//go:embed client/*.tmpl server/*.tmpl
var files embed.FS

// Template names accepted by Render.
const (
	ClientModel      = "client/model.ts.tmpl"
	ClientService    = "client/service.ts.tmpl"
	ClientRoute      = "client/route.ts.tmpl"
	ClientI18n       = "client/i18n.json.tmpl"
	ServerEntity     = "server/entity.java.tmpl"
	ServerRepository = "server/repository.java.tmpl"
	ServerChangelog  = "server/changelog.xml.tmpl"
)

var parsed = sync.OnceValues(func() (*template.Template, error) {
	return template.New("scaffolder").
		Funcs(funcMap()).
		Option("missingkey=error").
		ParseFS(files, "client/*.tmpl", "server/*.tmpl")
})

// Render executes the named template against data.
func Render(name string, data any) ([]byte, error) {
	root, err := parsed()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	tpl := root.Lookup(baseName(name))
	if tpl == nil {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	buf := &bytes.Buffer{}
	if err := tpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// ParseFS registers each file under its base name.
func baseName(name string) string {
	return path.Base(name)
}
