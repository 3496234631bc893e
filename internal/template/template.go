// Package template renders encoded query strings through text
// templates, for output formats beyond the raw parameter string (curl
// command lines, full URLs). Builtin templates are embedded; any file
// path works as well.
package template

import (
	"bytes"
	"embed"
	"io"
	"path"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"
)

//go:embed builtin/*.tmpl
var builtin embed.FS

// Data is the single rendering context handed to every template.
type Data struct {
	// Source is the data file the parameters came from.
	Source string
	// Params is the encoded query string, without a leading '?'.
	Params string
	// BaseURL is the configured base URL, possibly empty.
	BaseURL string
}

func newTemplate() (*template.Template, error) {
	// Add 'include' function to be able to indent templates
	makeFuncMap := func(t *template.Template) template.FuncMap {
		funcMap := make(template.FuncMap)
		// copied from: https://github.com/helm/helm/blob/8648ccf5d35d682dcd5f7a9c2082f0aaf071e817/pkg/engine/engine.go#L147-L154
		funcMap["include"] = func(name string, data interface{}) (string, error) {
			buf := bytes.NewBuffer(nil)
			if err := t.ExecuteTemplate(buf, name, data); err != nil {
				return "", err
			}
			return buf.String(), nil
		}
		return funcMap
	}

	var (
		tpl = template.New("builtin").Funcs(sprig.TxtFuncMap())
		err error
	)
	if tpl, err = tpl.Funcs(makeFuncMap(tpl)).ParseFS(builtin, "builtin/*.tmpl"); err != nil {
		return nil, errors.Wrap(err, "failed to load built-in templates")
	}
	return tpl, nil
}

// Render executes the named template with data. The name may be a
// builtin template or the path of a template file.
func Render(name string, data Data, output io.Writer) error {
	tpl, err := newTemplate()
	if err != nil {
		return err
	}
	selected := path.Base(name)
	if prev := tpl.Lookup(selected); prev == nil {
		if tpl, err = tpl.ParseFiles(name); err != nil {
			return errors.Wrapf(err, "failed to load template %s", name)
		}
	}
	if prev := tpl.Lookup(selected); prev == nil {
		return errors.Newf("template %s not found. %s", name, tpl.DefinedTemplates())
	}
	if err := tpl.ExecuteTemplate(output, selected, data); err != nil {
		return errors.Wrapf(err, "failed to execute template %s", name)
	}
	return nil
}

// Builtins returns the list of builtin templates
func Builtins() ([]string, error) {
	tpl, err := newTemplate()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tpl.Templates()))
	for _, tpl := range tpl.Templates() {
		names = append(names, tpl.Name())
	}
	return names, nil
}
