package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/warpcomdev/urlparams"
	"github.com/warpcomdev/urlparams/internal/config"
	"github.com/warpcomdev/urlparams/internal/importer"
	"github.com/warpcomdev/urlparams/internal/template"
)

// encode serializes every data file into a query string, writing to
// the selected output. Files are processed to completion; failures
// are collected and reported together.
func encode(c *cli.Context, store *config.Store, tmplName string, datafiles []string) error {
	if err := store.Read(c.String(selectedContextFlag.Name)); err != nil {
		return err
	}
	selected := store.Current

	params := make(map[string]string, len(selected.Params))
	for k, v := range selected.Params {
		params[k] = v
	}
	for _, pair := range c.StringSlice(paramFlag.Name) {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("param %q is not a NAME=VALUE pair", pair)
		}
		params[name] = value
	}

	libDir := c.String(libFlag.Name)
	if libDir == "" {
		libDir = selected.LibDir
	}
	if tmplName == "" {
		tmplName = selected.Template
	}
	baseURL := c.String(baseURLFlag.Name)
	if baseURL == "" {
		baseURL = selected.BaseURL
	}

	outfile, err := outputFile(c.String(outputFlag.Name)).Create()
	if err != nil {
		return err
	}
	defer outfile.Close()

	var errList error
	for i, datafile := range datafiles {
		err := encodeFile(outfile, datafile, params, libDir, tmplName, baseURL)
		if err != nil {
			errList = multierror.Append(errList, err)
			continue
		}
		if tmplName == "" && (outfile.Terminal() || i < len(datafiles)-1) {
			if _, err := io.WriteString(outfile, "\n"); err != nil {
				errList = multierror.Append(errList, err)
			}
		}
	}
	return errList
}

func encodeFile(w io.Writer, datafile string, params map[string]string, libDir, tmplName, baseURL string) error {
	value, err := importer.Load(datafile, params, libDir)
	if err != nil {
		return err
	}
	encoded, err := urlparams.ToString(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", datafile, err)
	}
	if tmplName != "" {
		data := template.Data{Source: datafile, Params: encoded, BaseURL: baseURL}
		return template.Render(tmplName, data, w)
	}
	_, err = io.WriteString(w, encoded)
	return err
}
