package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// save some file atomically
func atomicSave(path string, tmpPrefix string, data interface{}) error {
	byteData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fullFolder, _ := filepath.Split(path)
	if err := os.MkdirAll(fullFolder, 0750); err != nil {
		// Ignore error if the folder exists
		if !os.IsExist(err) {
			return err
		}
	}
	tmpFile, err := os.CreateTemp(fullFolder, tmpPrefix)
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name()) // just in case
	_, err = tmpFile.Write(byteData)
	closeErr := tmpFile.Close() // Close before returning and renaming, for windows.
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}
	if runtime.GOOS == "windows" {
		os.Chmod(path, 0644) // So that os.Rename works. See https://github.com/golang/go/issues/38287
	}
	return os.Rename(tmpFile.Name(), path)
}
