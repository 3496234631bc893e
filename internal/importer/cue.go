package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// loadCue evaluates a cue file with the provided params exposed in
// scope as the `params` struct.
func loadCue(datafile string, params map[string]string, pathLib string) (string, error) {
	handle, err := os.Open(datafile)
	if err != nil {
		return "", err
	}
	defer handle.Close()
	databytes, err := io.ReadAll(handle)
	if err != nil {
		return "", err
	}
	// Set params scope
	ctx := cuecontext.New()
	paramsJson, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	scope := ctx.CompileString(fmt.Sprintf("{\"params\": %s}", string(paramsJson)))
	// Compile cue
	value := ctx.CompileBytes(
		databytes,
		cue.Filename(datafile),
		cue.ImportPath(pathLib),
		cue.Scope(scope),
	)
	// Resolve cue
	resolved := value.Eval()
	if err := resolved.Err(); err != nil {
		return "", err
	}
	// Return resolved json!
	text, err := resolved.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(text), nil
}
