package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rileyhilliard/dash/internal/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a statistics data file.
type File struct {
	Statistics []Record `mapstructure:"statistics"`
}

// LoadFile reads statistics from a YAML, TOML or JSON file (chosen by extension)
// and returns them validated and defaulted.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrData,
			"Can't read data file "+path,
			"Check the path passed to --data or data_file")
	}
	return Parse(path, data)
}

// Parse decodes data according to the extension of name. Scalars are
// converted to the field type, so `id: 1` and `"id": 1` both load as "1".
// Unknown keys are rejected in every format.
func Parse(name string, data []byte) ([]Record, error) {
	var (
		raw    map[string]any
		format string
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		format = "YAML"
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, decodeError(name, format, err)
		}
	case ".toml":
		format = "TOML"
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, decodeError(name, format, err)
		}
	case ".json":
		format = "JSON"
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, decodeError(name, format, err)
		}
	default:
		return nil, errors.New(errors.ErrData,
			"Unsupported data file type: "+filepath.Base(name),
			"Use a .yaml, .yml, .toml or .json file")
	}

	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, decodeError(name, format, err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, decodeError(name, format, err)
	}

	return Normalize(f.Statistics)
}

func decodeError(name, format string, err error) error {
	return errors.WrapWithCode(err, errors.ErrData,
		"Can't parse "+filepath.Base(name),
		"Check the "+format+" syntax; records live under a top-level 'statistics' list")
}
