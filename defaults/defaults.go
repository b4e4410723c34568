package defaults

import (
	"io"
	"os"

	e "github.com/pkg/errors"
	"github.com/sahib/config"
)

// CurrentVersion is the current version of the gostcrypt config
const CurrentVersion = 0

// Defaults is the default validation for gostcrypt
var Defaults = DefaultsV0

func newMigrater() *config.Migrater {
	// Add here any migrations with mgr.Add if needed.
	mgr := config.NewMigrater(CurrentVersion, config.StrictnessPanic)
	mgr.Add(0, nil, DefaultsV0)
	return mgr
}

// Open reads a config in YAML format from `r` and migrates it to the
// newest version if required. A nil reader yields a config that only
// holds default values.
func Open(r io.Reader) (*config.Config, error) {
	if r == nil {
		return config.Open(nil, Defaults, config.StrictnessPanic)
	}

	cfg, err := newMigrater().Migrate(config.NewYamlDecoder(r))
	if err != nil {
		return nil, e.Wrap(err, "failed to migrate")
	}

	return cfg, nil
}

// OpenMigratedConfig takes the config.yml at path and loads it.
// If required, it also migrates the config structure to the newest
// version - callers can always rely on the latest config keys to be present.
func OpenMigratedConfig(path string) (*config.Config, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, e.Wrap(err, "failed to open config")
	}

	defer fd.Close()

	return Open(fd)
}
