package config

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/quasilyte/gdata"
)

const (
	// DefaultAppName names the per-user data directory when none is given.
	DefaultAppName = "oxy-debugcam"

	optionsItem = "debugcam-options"
)

// Store persists options in the per-user application data directory.
type Store struct {
	manager *gdata.Manager
}

// OpenStore opens the data directory for appName, falling back to DefaultAppName
// when appName is empty.
//
// Parameters:
//   - appName: the application name
//
// Returns:
//   - *Store: the opened store
//   - error: an error if the data directory is unavailable
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: common.Coalesce(appName, DefaultAppName),
	})
	if err != nil {
		return nil, fmt.Errorf("config: open store: %w", err)
	}
	return &Store{manager: m}, nil
}

// LoadOptions returns the saved options, or nil with no error if nothing was saved yet.
//
// Returns:
//   - *debugcam.Options: the saved options, or nil
//   - error: a read, parse or validation error
func (s *Store) LoadOptions() (*debugcam.Options, error) {
	data, err := s.manager.LoadItem(optionsItem)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", optionsItem, err)
	}
	if data == nil {
		return nil, nil
	}
	return Decode(data)
}

// SaveOptions validates and stores o.
//
// Parameters:
//   - o: the options to store
//
// Returns:
//   - error: a validation, marshal or write error
func (s *Store) SaveOptions(o *debugcam.Options) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := Encode(o)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(optionsItem, data); err != nil {
		return fmt.Errorf("config: save %s: %w", optionsItem, err)
	}
	return nil
}
