package cmd

import (
	"github.com/teamforge/teamforge-ctl/internal/catalog"
	"github.com/teamforge/teamforge-ctl/internal/errors"
)

// loadLibrary loads the embedded agent library or maps the failure to a
// config error.
func loadLibrary() (*catalog.Library, error) {
	lib, err := catalog.Load()
	if err != nil {
		return nil, errors.ConfigError("failed to load agent library", err)
	}
	return lib, nil
}
