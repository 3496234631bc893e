// Package config persists named encoding contexts: parameter sets and
// defaults that the CLI feeds to the data file importer. Contexts are
// stored one JSON file per context under the user config dir, next to
// a selection file naming the context in use.
package config

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrNoContext        = errors.New("no context in use")
	ErrParametersNumber = errors.New("please provide parameter - value pairs")
)

// Config holds the settings of one named context.
type Config struct {
	Name     string            `json:"name"`
	BaseURL  string            `json:"baseurl,omitempty"`
	LibDir   string            `json:"libdir,omitempty"`
	Template string            `json:"template,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
}

// String renders the context for display.
func (c Config) String() string {
	text, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return c.Name
	}
	return string(text)
}

// CanConfig lists the variables the `set` command accepts.
func (c *Config) CanConfig() []string {
	return []string{"baseurl", "libdir", "template"}
}

// Set updates context variables from a flat list of variable - value
// pairs.
func (c *Config) Set(pairs []string) error {
	if len(pairs)%2 != 0 {
		return ErrParametersNumber
	}
	for i := 0; i < len(pairs); i += 2 {
		name, value := strings.ToLower(pairs[i]), pairs[i+1]
		switch name {
		case "baseurl":
			c.BaseURL = value
		case "libdir":
			c.LibDir = value
		case "template":
			c.Template = value
		default:
			return errors.Newf("unknown variable %s, must be one of: %s",
				name, strings.Join(c.CanConfig(), ", "))
		}
	}
	return nil
}

// SetParams updates importer params from a flat list of param - value
// pairs.
func (c *Config) SetParams(pairs []string) error {
	if len(pairs)%2 != 0 {
		return ErrParametersNumber
	}
	if c.Params == nil {
		c.Params = make(map[string]string)
	}
	for i := 0; i < len(pairs); i += 2 {
		c.Params[pairs[i]] = pairs[i+1]
	}
	return nil
}
