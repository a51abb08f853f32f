package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteJSONFile writes v as indented JSON, creating parent directories and
// truncating any existing file.
func WriteJSONFile(fPath string, v interface{}, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fPath, data, perm)
}

func ReadJSONFile(fPath string, v interface{}) error {
	data, err := os.ReadFile(fPath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func FileExists(fPath string) bool {
	info, err := os.Stat(fPath)
	return err == nil && !info.IsDir()
}
