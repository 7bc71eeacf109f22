package proj

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Options is the external form of Builder configuration, loadable from a
// YAML file and the environment.
type Options struct {
	EnableNetwork bool     `koanf:"enable_network"`
	GridCachePath string   `koanf:"grid_cache_path"`
	Endpoint      string   `koanf:"endpoint"`
	SearchPaths   []string `koanf:"search_paths"`
}

// Environment variables override the file: PROJ_ENABLE_NETWORK,
// PROJ_GRID_CACHE_PATH, PROJ_ENDPOINT.
const envPrefix = "PROJ_"

// LoadOptions reads Options from a YAML file, then overlays any PROJ_*
// environment variables. path may be empty to configure from the
// environment alone.
func LoadOptions(path string) (Options, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Options{}, &InvalidInputError{Reason: fmt.Sprintf("config file %s: %v", path, err)}
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Options{}, &InvalidInputError{Reason: fmt.Sprintf("environment: %v", err)}
	}

	var o Options
	if err := k.Unmarshal("", &o); err != nil {
		return Options{}, &InvalidInputError{Reason: fmt.Sprintf("config: %v", err)}
	}
	return o, nil
}

// Builder turns the loaded options into a Builder, ready for Finalize.
func (o Options) Builder() *Builder {
	b := NewBuilder().
		EnableNetwork(o.EnableNetwork).
		GridCachePath(o.GridCachePath).
		Endpoint(o.Endpoint)
	if len(o.SearchPaths) > 0 {
		b.SearchPaths(o.SearchPaths...)
	}
	return b
}
