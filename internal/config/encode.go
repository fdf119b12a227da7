package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/clekey/clekeyOVR/internal/config/loader"
)

// Encode serializes c in format.
func Encode(c *Config, format loader.Format) ([]byte, error) {
	switch format {
	case loader.FormatTOML:
		return toml.Marshal(c)
	case loader.FormatYAML:
		return yaml.Marshal(c)
	case loader.FormatJSON:
		return encodeJSON(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeJSON(c *Config) ([]byte, error) {
	m, err := ToMap(c)
	if err != nil {
		return nil, err
	}
	out := []byte("{}")
	if out, err = setJSON(out, "", m); err != nil {
		return nil, err
	}
	return []byte(gjson.GetBytes(out, "@pretty").Raw), nil
}

// setJSON writes the leaves of m under prefix in key order.
func setJSON(out []byte, prefix string, m map[string]any) ([]byte, error) {
	var err error
	for _, key := range slices.Sorted(maps.Keys(m)) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if sub, ok := m[key].(map[string]any); ok {
			out, err = setJSON(out, path, sub)
		} else {
			out, err = sjson.SetBytes(out, path, m[key])
		}
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", path, err)
		}
	}
	return out, nil
}
