package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/softlink/pkg/errors"
	"github.com/arthur-debert/softlink/pkg/logging"
	"github.com/arthur-debert/softlink/pkg/types"
)

// LocationsFileName is the config file expected in the source directory.
const LocationsFileName = "locations.toml"

// Parse decodes locations.toml content into a LinkSpec. Every value
// must be a string; an empty string is the removal marker. TOML rejects
// duplicate keys, so each destination appears at most once.
func Parse(data []byte) (types.LinkSpec, error) {
	var spec types.LinkSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse locations file")
	}
	return spec, nil
}

// Load reads and parses the locations file at path.
func Load(fsys types.FS, path string) (types.LinkSpec, error) {
	logger := logging.GetLogger("config")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Int("entries", len(spec)).Msg("loaded locations file")
	return spec, nil
}
