package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envFile is the layout shared by the JSON and YAML formats: a top-level
// "env" object holding string key-value pairs.
//
//	env:
//	  ORDERDEMO_ELEMENTS: "7,15,6,1,2"
//	  LOG_LEVEL: debug
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

// LoadEnvFile reads a .json, .yml or .yaml file and returns its "env" map.
func LoadEnvFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(bts, out)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(bts, out)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if out.Env == nil {
		return map[string]string{}, nil
	}

	return out.Env, nil
}

// FromFile loads an env file and returns it as a Source.
func FromFile(path string) (Source, error) {
	values, err := LoadEnvFile(path)
	if err != nil {
		return nil, err
	}

	return FromMap(values), nil
}
