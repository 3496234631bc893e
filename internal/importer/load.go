// Package importer evaluates data files into generic values ready for
// query-string serialization. JSON is read as-is; jsonnet, starlark
// and cue files are evaluated first, with the provided params exposed
// to the program, and their JSON result decoded.
package importer

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Load reads datafile and returns the decoded value. The loader is
// picked by extension: .json, .jsonnet/.libsonnet, .star/.py, and
// .cue for everything else. params are handed to the evaluated
// program (jsonnet ext vars, starlark arguments, cue scope); libPath
// is an extra directory for imports.
func Load(datafile string, params map[string]string, libPath string) (interface{}, error) {
	var (
		jsonStr string
		err     error
	)
	lowerName := strings.ToLower(datafile)
	switch {
	case strings.HasSuffix(lowerName, ".json"):
		var raw []byte
		raw, err = os.ReadFile(datafile)
		jsonStr = string(raw)
	case strings.HasSuffix(lowerName, ".jsonnet") || strings.HasSuffix(lowerName, ".libsonnet"):
		jsonStr, err = loadJsonnet(datafile, params, libPath)
	case strings.HasSuffix(lowerName, ".star") || strings.HasSuffix(lowerName, ".py"):
		jsonStr, err = loadStarlark(datafile, params, libPath)
	default:
		jsonStr, err = loadCue(datafile, params, libPath)
	}
	if err != nil {
		return nil, err
	}
	var value interface{}
	decoder := json.NewDecoder(strings.NewReader(jsonStr))
	if err := decoder.Decode(&value); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal file %s", datafile)
	}
	return value, nil
}
