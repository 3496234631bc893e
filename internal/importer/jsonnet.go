package importer

import (
	"github.com/cockroachdb/errors"
	"github.com/google/go-jsonnet"
)

// loadJsonnet evaluates a jsonnet file with the provided params as
// std.extVars.
func loadJsonnet(datafile string, params map[string]string, pathLib string) (string, error) {
	vm := jsonnet.MakeVM()
	for k, v := range params {
		vm.ExtVar(k, v)
	}
	if pathLib != "" {
		vm.Importer(&jsonnet.FileImporter{
			JPaths: []string{pathLib},
		})
	}
	jsonStr, err := vm.EvaluateFile(datafile)
	if err != nil {
		return "", errors.Wrapf(err, "failed to load file %s as jsonnet", datafile)
	}
	return jsonStr, nil
}
