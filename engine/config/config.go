// Package config reads, writes, watches and persists debug camera options.
package config

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"gopkg.in/yaml.v3"
)

// Decode parses YAML into Options. Fields missing from data keep their
// DefaultOptions value; the result is validated.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - *debugcam.Options: the decoded options
//   - error: a parse or validation error
func Decode(data []byte) (*debugcam.Options, error) {
	o := debugcam.DefaultOptions()
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return o, nil
}

// Encode renders o as YAML.
//
// Parameters:
//   - o: the options to encode
//
// Returns:
//   - []byte: the YAML document
//   - error: a marshal error
func Encode(o *debugcam.Options) ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Load reads and decodes the options file at path.
//
// Parameters:
//   - path: the YAML file
//
// Returns:
//   - *debugcam.Options: the decoded options
//   - error: a read, parse or validation error
func Load(path string) (*debugcam.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	o, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return o, nil
}

// Save validates o and writes it to path.
//
// Parameters:
//   - path: the YAML file
//   - o: the options to write
//
// Returns:
//   - error: a validation, marshal or write error
func Save(path string, o *debugcam.Options) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := Encode(o)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	return nil
}
